package requests

type StartAssessmentRun struct {
	InstrumentID string `json:"instrument_id" validate:"required"`
	// HandoffToken carries the wizard's contact profile across the
	// navigation boundary; anonymous runs leave it empty.
	HandoffToken string `json:"handoff_token,omitempty"`
}

type SelectAnswer struct {
	QuestionID int `json:"question_id" validate:"required,gte=1"`
	Value      int `json:"value" validate:"gte=0"`
}
