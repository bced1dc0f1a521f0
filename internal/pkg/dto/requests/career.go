package requests

import "mime/multipart"

type SubmitCareerApplication struct {
	Name        string `validate:"required,min=1"`
	Email       string `validate:"required,email"`
	Phone       string `validate:"omitempty"`
	Message     string `validate:"omitempty,max=5000"`
	CV          *multipart.FileHeader
	CoverLetter *multipart.FileHeader
}
