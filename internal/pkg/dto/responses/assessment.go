package responses

import "serenemind-service/internal/app/models"

type InstrumentSummary struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Route       string `json:"route"`
	Icon        string `json:"icon"`
}

type InstrumentDetail struct {
	InstrumentSummary
	Questions []models.Question     `json:"questions"`
	Options   []models.AnswerOption `json:"options"`
	// Screening disclaimer shown above every instrument; results are
	// informational, not a medical diagnosis.
	Disclaimer string `json:"disclaimer"`
}

type AssessmentRunState struct {
	RunID          string                `json:"run_id"`
	InstrumentID   string                `json:"instrument_id"`
	Mode           models.RunMode        `json:"mode"`
	Answered       int                   `json:"answered"`
	QuestionCount  int                   `json:"question_count"`
	IsComplete     bool                  `json:"is_complete"`
	HasContact     bool                  `json:"has_contact"`
	Result         *models.ScoreResult   `json:"result,omitempty"`
	DeliveryStatus models.DeliveryStatus `json:"delivery_status"`
}
