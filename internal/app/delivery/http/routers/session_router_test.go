package routers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"serenemind-service/internal/app/models"
	"serenemind-service/internal/app/services/core/sessions"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockSessionUsecase struct {
	mock.Mock
}

func (m *MockSessionUsecase) OpenSession(ctx context.Context) (*responses.WizardSessionState, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WizardSessionState), args.Error(1)
}

func (m *MockSessionUsecase) SubmitContact(ctx context.Context, sessionID string, request *requests.SubmitContact) (*responses.WizardSessionState, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WizardSessionState), args.Error(1)
}

func (m *MockSessionUsecase) SelectInstrument(ctx context.Context, sessionID string, request *requests.SelectInstrument) (*responses.WizardSessionState, error) {
	args := m.Called(ctx, sessionID, request)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WizardSessionState), args.Error(1)
}

func (m *MockSessionUsecase) ConfirmConsent(ctx context.Context, sessionID string) (*responses.ConsentConfirmed, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.ConsentConfirmed), args.Error(1)
}

func (m *MockSessionUsecase) CancelConsent(ctx context.Context, sessionID string) (*responses.WizardSessionState, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*responses.WizardSessionState), args.Error(1)
}

func (m *MockSessionUsecase) CloseSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newSessionTestRouter(mockUsecase *MockSessionUsecase) *chi.Mux {
	sessionController := sessions.NewSessionController(zap.NewNop(), mockUsecase)
	router := chi.NewRouter()
	router.Route("/assessment-sessions", func(r chi.Router) {
		attachSessionRoutes(r, sessionController)
	})
	return router
}

func TestSessionRouter_OpenSession(t *testing.T) {
	mockUsecase := new(MockSessionUsecase)
	mockUsecase.On("OpenSession", mock.Anything).Return(&responses.WizardSessionState{
		SessionID: "session-1",
		Step:      models.WizardStepContactCapture,
	}, nil)

	router := newSessionTestRouter(mockUsecase)

	request := httptest.NewRequest(http.MethodPost, "/assessment-sessions/", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusCreated, recorder.Code)

	var body responses.ResponseDTO
	assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
	assert.True(t, body.Success)
	mockUsecase.AssertExpectations(t)
}

func TestSessionRouter_SubmitContact(t *testing.T) {
	t.Run("Valid Payload Returns OK", func(t *testing.T) {
		mockUsecase := new(MockSessionUsecase)
		mockUsecase.On("SubmitContact", mock.Anything, "session-1", mock.Anything).Return(&responses.WizardSessionState{
			SessionID: "session-1",
			Step:      models.WizardStepInstrumentSelection,
		}, nil)

		router := newSessionTestRouter(mockUsecase)

		payload, _ := json.Marshal(requests.SubmitContact{Name: "Ade", Contact: "ade@example.com"})
		request := httptest.NewRequest(http.MethodPost, "/assessment-sessions/session-1/contact", bytes.NewReader(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusOK, recorder.Code)
		mockUsecase.AssertExpectations(t)
	})

	t.Run("Malformed JSON Is Bad Request", func(t *testing.T) {
		router := newSessionTestRouter(new(MockSessionUsecase))

		request := httptest.NewRequest(http.MethodPost, "/assessment-sessions/session-1/contact", bytes.NewReader([]byte("{not json")))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusBadRequest, recorder.Code)
	})

	t.Run("Wrong Step Conflict Propagates", func(t *testing.T) {
		mockUsecase := new(MockSessionUsecase)
		mockUsecase.On("SubmitContact", mock.Anything, "session-1", mock.Anything).
			Return(nil, exceptions.ErrWizardInvalidTransition("consent_required"))

		router := newSessionTestRouter(mockUsecase)

		payload, _ := json.Marshal(requests.SubmitContact{Name: "Ade", Contact: "ade@example.com"})
		request := httptest.NewRequest(http.MethodPost, "/assessment-sessions/session-1/contact", bytes.NewReader(payload))
		recorder := httptest.NewRecorder()
		router.ServeHTTP(recorder, request)

		assert.Equal(t, http.StatusConflict, recorder.Code)

		var body responses.ResponseDTO
		assert.NoError(t, json.NewDecoder(recorder.Body).Decode(&body))
		assert.False(t, body.Success)
	})
}

func TestSessionRouter_ConfirmConsent(t *testing.T) {
	mockUsecase := new(MockSessionUsecase)
	mockUsecase.On("ConfirmConsent", mock.Anything, "session-1").Return(&responses.ConsentConfirmed{
		Route:        "/cage",
		InstrumentID: "cage",
		HandoffToken: "token-1",
	}, nil)

	router := newSessionTestRouter(mockUsecase)

	request := httptest.NewRequest(http.MethodPost, "/assessment-sessions/session-1/consent", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "token-1")
	mockUsecase.AssertExpectations(t)
}

func TestSessionRouter_CloseSession(t *testing.T) {
	mockUsecase := new(MockSessionUsecase)
	mockUsecase.On("CloseSession", mock.Anything, "session-1").Return(nil)

	router := newSessionTestRouter(mockUsecase)

	request := httptest.NewRequest(http.MethodDelete, "/assessment-sessions/session-1", nil)
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	mockUsecase.AssertExpectations(t)
}
