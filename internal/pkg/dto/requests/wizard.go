package requests

type SubmitContact struct {
	Name    string `json:"name" validate:"required,min=1"`
	Contact string `json:"contact" validate:"required,contact"`
}

type SelectInstrument struct {
	InstrumentID string `json:"instrument_id" validate:"required"`
}
