package sessions

import (
	"context"
	"fmt"
	"testing"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

// fakeRedisRepository mirrors the real repository's behavior: values are
// marshaled on Set and misses return an empty string with no error.
type fakeRedisRepository struct {
	store map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{store: make(map[string]string)}
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, exp time.Duration) error {
	jsonValue, err := json.Marshal(value)
	if err != nil {
		return err
	}
	f.store[key] = string(jsonValue)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.store[key], nil
}

func (f *fakeRedisRepository) GetDel(ctx context.Context, key string) (string, error) {
	data := f.store[key]
	delete(f.store, key)
	return data, nil
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.store, key)
	return nil
}

func testInternalConfig() *config.InternalConfig {
	cfg := new(config.InternalConfig)
	cfg.Assessment.WizardSessionTTLInMinutes = 30
	cfg.Assessment.HandoffTTLInMinutes = 5
	return cfg
}

func TestSessionUsecase(t *testing.T) {
	ctx := context.Background()

	openWithContact := func(t *testing.T, uc SessionUsecase) string {
		state, err := uc.OpenSession(ctx)
		assert.NoError(t, err)

		_, err = uc.SubmitContact(ctx, state.SessionID, &requests.SubmitContact{
			Name:    "Ade Putra",
			Contact: "ade.putra@example.com",
		})
		assert.NoError(t, err)
		return state.SessionID
	}

	t.Run("Open Session Starts At Contact Capture", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())

		state, err := uc.OpenSession(ctx)

		assert.NoError(t, err)
		assert.NotEmpty(t, state.SessionID)
		assert.Equal(t, models.WizardStepContactCapture, state.Step)
	})

	t.Run("Submit Contact Advances To Instrument Selection", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		state, err := uc.OpenSession(ctx)
		assert.NoError(t, err)

		state, err = uc.SubmitContact(ctx, state.SessionID, &requests.SubmitContact{
			Name:    "Ade Putra",
			Contact: "+628123456789",
		})

		assert.NoError(t, err)
		assert.Equal(t, models.WizardStepInstrumentSelection, state.Step)
	})

	t.Run("Submit Contact Rejects Empty Fields", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		state, err := uc.OpenSession(ctx)
		assert.NoError(t, err)

		_, err = uc.SubmitContact(ctx, state.SessionID, &requests.SubmitContact{Name: "", Contact: ""})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusBadRequest, customErr.StatusCode)
	})

	t.Run("Select Instrument Before Contact Is Rejected", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		state, err := uc.OpenSession(ctx)
		assert.NoError(t, err)

		_, err = uc.SelectInstrument(ctx, state.SessionID, &requests.SelectInstrument{InstrumentID: "cage"})

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusConflict, customErr.StatusCode, "wrong-step calls must conflict, not succeed")
	})

	t.Run("Select Unknown Instrument Is Rejected", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		sessionID := openWithContact(t, uc)

		_, err := uc.SelectInstrument(ctx, sessionID, &requests.SelectInstrument{InstrumentID: "rorschach"})

		assert.Error(t, err)
	})

	t.Run("Confirm Consent Issues Handoff And Closes Session", func(t *testing.T) {
		store := newFakeRedisRepository()
		uc := NewSessionUsecase(store, testInternalConfig())
		sessionID := openWithContact(t, uc)

		_, err := uc.SelectInstrument(ctx, sessionID, &requests.SelectInstrument{InstrumentID: "phq9"})
		assert.NoError(t, err)

		confirmed, err := uc.ConfirmConsent(ctx, sessionID)

		assert.NoError(t, err)
		assert.Equal(t, "phq9", confirmed.InstrumentID)
		assert.Equal(t, constvars.RoutePhq9, confirmed.Route)
		assert.NotEmpty(t, confirmed.HandoffToken)

		handoffJSON := store.store[fmt.Sprintf(constvars.RedisKeyContactHandoffFormat, confirmed.HandoffToken)]
		assert.NotEmpty(t, handoffJSON, "handoff must be persisted under the issued token")

		handoff := new(models.ContactHandoff)
		assert.NoError(t, json.Unmarshal([]byte(handoffJSON), handoff))
		assert.Equal(t, "Ade Putra", handoff.Contact.Name)
		assert.Equal(t, "phq9", handoff.InstrumentID)

		_, err = uc.ConfirmConsent(ctx, sessionID)
		assert.Error(t, err, "a closed session must not issue a second token")
	})

	t.Run("Cancel Consent Returns To Selection And Keeps Choice", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		sessionID := openWithContact(t, uc)

		_, err := uc.SelectInstrument(ctx, sessionID, &requests.SelectInstrument{InstrumentID: "burnout"})
		assert.NoError(t, err)

		state, err := uc.CancelConsent(ctx, sessionID)

		assert.NoError(t, err)
		assert.Equal(t, models.WizardStepInstrumentSelection, state.Step)
		assert.Equal(t, "burnout", state.SelectedInstrumentID)

		state, err = uc.SelectInstrument(ctx, sessionID, &requests.SelectInstrument{InstrumentID: "anxiety"})
		assert.NoError(t, err)
		assert.Equal(t, "anxiety", state.SelectedInstrumentID, "re-selection after declining must be allowed")
	})

	t.Run("Close Session Is Idempotent", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())
		state, err := uc.OpenSession(ctx)
		assert.NoError(t, err)

		assert.NoError(t, uc.CloseSession(ctx, state.SessionID))
		assert.NoError(t, uc.CloseSession(ctx, state.SessionID), "closing twice must not fail")
	})

	t.Run("Unknown Session Is Not Found", func(t *testing.T) {
		uc := NewSessionUsecase(newFakeRedisRepository(), testInternalConfig())

		_, err := uc.ConfirmConsent(ctx, "missing-session")

		assert.Error(t, err)
		customErr, ok := err.(*exceptions.CustomError)
		assert.True(t, ok)
		assert.Equal(t, constvars.StatusNotFound, customErr.StatusCode)
	})
}
