package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type CareerApplication struct {
	ID                primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Name              string             `json:"name" bson:"name"`
	Email             string             `json:"email" bson:"email"`
	Phone             string             `json:"phone" bson:"phone"`
	Message           string             `json:"message" bson:"message"`
	CVFileID          string             `json:"cv_file_id" bson:"cvFileId"`
	CoverLetterFileID string             `json:"cover_letter_file_id,omitempty" bson:"coverLetterFileId,omitempty"`
	SubmittedAt       time.Time          `json:"submitted_at" bson:"submittedAt"`
}
