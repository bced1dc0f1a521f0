package notifications

import (
	"context"

	"serenemind-service/internal/app/models"
)

// NotifierUsecase delivers a scored result to the reviewing clinician through
// the external email-dispatch collaborator. Configured reports whether the
// collaborator holds the credentials it needs, so callers can fail a delivery
// before attempting it.
type NotifierUsecase interface {
	Configured() error
	ReportResult(ctx context.Context, contact *models.ContactProfile, instrumentName string, result *models.ScoreResult) error
}
