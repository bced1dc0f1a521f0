package models

import "time"

// WizardStep enumerates the selection wizard's states.
type WizardStep string

const (
	WizardStepContactCapture      WizardStep = "contact_capture"
	WizardStepInstrumentSelection WizardStep = "instrument_selection"
	WizardStepConsentRequired     WizardStep = "consent_required"
)

type WizardSession struct {
	ID                   string          `json:"id"`
	Step                 WizardStep      `json:"step"`
	Contact              *ContactProfile `json:"contact,omitempty"`
	SelectedInstrumentID string          `json:"selected_instrument_id,omitempty"`
	CreatedAt            time.Time       `json:"created_at"`
	UpdatedAt            time.Time       `json:"updated_at"`
}

// ContactHandoff is the read-once payload passed from the wizard to the
// instrument page across the navigation boundary. It lives in the session
// store under a one-time token and is deleted on first read.
type ContactHandoff struct {
	Contact      ContactProfile `json:"contact"`
	InstrumentID string         `json:"instrument_id"`
	Route        string         `json:"route"`
	IssuedAt     time.Time      `json:"issued_at"`
}
