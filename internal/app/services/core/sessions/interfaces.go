package sessions

import (
	"context"

	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
)

type SessionUsecase interface {
	OpenSession(ctx context.Context) (*responses.WizardSessionState, error)
	SubmitContact(ctx context.Context, sessionID string, request *requests.SubmitContact) (*responses.WizardSessionState, error)
	SelectInstrument(ctx context.Context, sessionID string, request *requests.SelectInstrument) (*responses.WizardSessionState, error)
	ConfirmConsent(ctx context.Context, sessionID string) (*responses.ConsentConfirmed, error)
	CancelConsent(ctx context.Context, sessionID string) (*responses.WizardSessionState, error)
	CloseSession(ctx context.Context, sessionID string) error
}
