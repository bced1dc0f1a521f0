package models

import "time"

// RunMode is the answer-collection state machine inside one instrument page.
type RunMode string

const (
	RunModeCollecting RunMode = "collecting"
	RunModeResults    RunMode = "results"
)

// DeliveryStatus is the lifecycle of one reviewer-notification attempt. It is
// monotonic within a single submission (idle -> sending -> sent|error) and is
// reset to idle only by a retake.
type DeliveryStatus string

const (
	DeliveryStatusIdle    DeliveryStatus = "idle"
	DeliveryStatusSending DeliveryStatus = "sending"
	DeliveryStatusSent    DeliveryStatus = "sent"
	DeliveryStatusError   DeliveryStatus = "error"
)

type AssessmentRun struct {
	ID             string          `json:"id"`
	InstrumentID   string          `json:"instrument_id"`
	Mode           RunMode         `json:"mode"`
	Contact        *ContactProfile `json:"contact,omitempty"`
	Answers        AnswerSet       `json:"answers"`
	Result         *ScoreResult    `json:"result,omitempty"`
	DeliveryStatus DeliveryStatus  `json:"delivery_status"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`
}
