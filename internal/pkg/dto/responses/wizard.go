package responses

import "serenemind-service/internal/app/models"

type WizardSessionState struct {
	SessionID            string            `json:"session_id"`
	Step                 models.WizardStep `json:"step"`
	SelectedInstrumentID string            `json:"selected_instrument_id,omitempty"`
}

// ConsentConfirmed is the wizard's terminal payload: where to navigate and the
// one-time token that lets the instrument page pick up the contact profile.
type ConsentConfirmed struct {
	Route        string `json:"route"`
	InstrumentID string `json:"instrument_id"`
	HandoffToken string `json:"handoff_token"`
}
