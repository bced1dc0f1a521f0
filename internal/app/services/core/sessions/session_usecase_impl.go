package sessions

import (
	"context"
	"fmt"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/app/services/core/instruments"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type sessionUsecase struct {
	RedisRepository contracts.RedisRepository
	InternalConfig  *config.InternalConfig
}

func NewSessionUsecase(redisRepository contracts.RedisRepository, internalConfig *config.InternalConfig) SessionUsecase {
	return &sessionUsecase{
		RedisRepository: redisRepository,
		InternalConfig:  internalConfig,
	}
}

func (uc *sessionUsecase) OpenSession(ctx context.Context) (*responses.WizardSessionState, error) {
	now := time.Now().UTC()
	session := &models.WizardSession{
		ID:        uuid.New().String(),
		Step:      models.WizardStepContactCapture,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return buildSessionState(session), nil
}

func (uc *sessionUsecase) SubmitContact(ctx context.Context, sessionID string, request *requests.SubmitContact) (*responses.WizardSessionState, error) {
	utils.SanitizeSubmitContactRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.WizardStepContactCapture {
		return nil, exceptions.ErrWizardInvalidTransition(string(session.Step))
	}

	session.Contact = &models.ContactProfile{
		Name:    request.Name,
		Contact: request.Contact,
	}
	session.Step = models.WizardStepInstrumentSelection

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return buildSessionState(session), nil
}

func (uc *sessionUsecase) SelectInstrument(ctx context.Context, sessionID string, request *requests.SelectInstrument) (*responses.WizardSessionState, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if _, ok := instruments.Lookup(request.InstrumentID); !ok {
		return nil, exceptions.ErrUnknownInstrument(request.InstrumentID)
	}

	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	// Re-selection from the consent step is allowed so the user can change
	// their mind before confirming.
	if session.Step != models.WizardStepInstrumentSelection && session.Step != models.WizardStepConsentRequired {
		return nil, exceptions.ErrWizardInvalidTransition(string(session.Step))
	}

	session.SelectedInstrumentID = request.InstrumentID
	session.Step = models.WizardStepConsentRequired

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return buildSessionState(session), nil
}

func (uc *sessionUsecase) ConfirmConsent(ctx context.Context, sessionID string) (*responses.ConsentConfirmed, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.WizardStepConsentRequired {
		return nil, exceptions.ErrWizardInvalidTransition(string(session.Step))
	}

	spec, ok := instruments.Lookup(session.SelectedInstrumentID)
	if !ok {
		return nil, exceptions.ErrUnknownInstrument(session.SelectedInstrumentID)
	}

	handoff := &models.ContactHandoff{
		Contact:      *session.Contact,
		InstrumentID: spec.ID,
		Route:        spec.Route,
		IssuedAt:     time.Now().UTC(),
	}

	token := uuid.New().String()
	handoffKey := fmt.Sprintf(constvars.RedisKeyContactHandoffFormat, token)
	handoffTTL := time.Duration(uc.InternalConfig.Assessment.HandoffTTLInMinutes) * time.Minute
	if err := uc.RedisRepository.Set(ctx, handoffKey, handoff, handoffTTL); err != nil {
		return nil, err
	}

	// The wizard is done once consent is confirmed. Closing here keeps the
	// session from being replayed into a second handoff token.
	if err := uc.deleteSession(ctx, session.ID); err != nil {
		return nil, err
	}

	return &responses.ConsentConfirmed{
		Route:        spec.Route,
		InstrumentID: spec.ID,
		HandoffToken: token,
	}, nil
}

func (uc *sessionUsecase) CancelConsent(ctx context.Context, sessionID string) (*responses.WizardSessionState, error) {
	session, err := uc.findSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Step != models.WizardStepConsentRequired {
		return nil, exceptions.ErrWizardInvalidTransition(string(session.Step))
	}

	// Declining consent returns the user to the picker. The selection is kept
	// so it can be shown as the previous choice.
	session.Step = models.WizardStepInstrumentSelection

	if err := uc.saveSession(ctx, session); err != nil {
		return nil, err
	}

	return buildSessionState(session), nil
}

func (uc *sessionUsecase) CloseSession(ctx context.Context, sessionID string) error {
	// Closing is idempotent: abandoning an already-closed session is a no-op,
	// not an error.
	return uc.deleteSession(ctx, sessionID)
}

func (uc *sessionUsecase) findSession(ctx context.Context, sessionID string) (*models.WizardSession, error) {
	key := fmt.Sprintf(constvars.RedisKeyWizardSessionFormat, sessionID)
	sessionJSON, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	if sessionJSON == "" {
		return nil, exceptions.ErrWizardSessionNotFound(nil)
	}

	session := new(models.WizardSession)
	if err := json.Unmarshal([]byte(sessionJSON), session); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return session, nil
}

func (uc *sessionUsecase) saveSession(ctx context.Context, session *models.WizardSession) error {
	session.UpdatedAt = time.Now().UTC()
	key := fmt.Sprintf(constvars.RedisKeyWizardSessionFormat, session.ID)
	ttl := time.Duration(uc.InternalConfig.Assessment.WizardSessionTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, key, session, ttl)
}

func (uc *sessionUsecase) deleteSession(ctx context.Context, sessionID string) error {
	key := fmt.Sprintf(constvars.RedisKeyWizardSessionFormat, sessionID)
	return uc.RedisRepository.Delete(ctx, key)
}

func buildSessionState(session *models.WizardSession) *responses.WizardSessionState {
	return &responses.WizardSessionState{
		SessionID:            session.ID,
		Step:                 session.Step,
		SelectedInstrumentID: session.SelectedInstrumentID,
	}
}
