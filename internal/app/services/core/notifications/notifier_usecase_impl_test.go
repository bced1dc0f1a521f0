package notifications

import (
	"context"
	"errors"
	"testing"

	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/dto/requests"

	"github.com/stretchr/testify/assert"
)

type fakeDispatchService struct {
	sent          []*requests.DispatchParams
	sendErr       error
	configuredErr error
}

func (f *fakeDispatchService) Configured() error {
	return f.configuredErr
}

func (f *fakeDispatchService) Send(ctx context.Context, params *requests.DispatchParams) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.sent = append(f.sent, params)
	return nil
}

func intPtr(v int) *int { return &v }

func TestNotifierUsecase(t *testing.T) {
	ctx := context.Background()
	result := &models.ScoreResult{
		Total: intPtr(2),
		Interpretation: models.Interpretation{
			Label:    "High Risk",
			Text:     "Your responses suggest a high risk of alcohol dependency.",
			Severity: models.SeverityHigh,
		},
	}

	t.Run("Message Carries Instrument Name And Score", func(t *testing.T) {
		dispatch := &fakeDispatchService{}
		uc := NewNotifierUsecase(dispatch)

		err := uc.ReportResult(ctx, &models.ContactProfile{Name: "Ade Putra", Contact: "ade@example.com"}, "CAGE Assessment", result)

		assert.NoError(t, err)
		assert.Len(t, dispatch.sent, 1)
		params := dispatch.sent[0]
		assert.Equal(t, "Ade Putra", params.Name)
		assert.Equal(t, "CAGE Assessment", params.Title)
		assert.Contains(t, params.Message, "CAGE")
		assert.Contains(t, params.Message, "Score: 2")
		assert.Contains(t, params.Message, result.Interpretation.Text)
	})

	t.Run("Email Contact Fills Email Slot", func(t *testing.T) {
		dispatch := &fakeDispatchService{}
		uc := NewNotifierUsecase(dispatch)

		err := uc.ReportResult(ctx, &models.ContactProfile{Name: "A", Contact: "a@example.com"}, "CAGE Assessment", result)

		assert.NoError(t, err)
		assert.Equal(t, "a@example.com", dispatch.sent[0].Email)
		assert.Empty(t, dispatch.sent[0].Phone)
	})

	t.Run("Phone Contact Fills Phone Slot", func(t *testing.T) {
		dispatch := &fakeDispatchService{}
		uc := NewNotifierUsecase(dispatch)

		err := uc.ReportResult(ctx, &models.ContactProfile{Name: "A", Contact: "+628123456789"}, "CAGE Assessment", result)

		assert.NoError(t, err)
		assert.Equal(t, "+628123456789", dispatch.sent[0].Phone)
		assert.Empty(t, dispatch.sent[0].Email)
	})

	t.Run("Dispatch Failure Propagates", func(t *testing.T) {
		dispatch := &fakeDispatchService{sendErr: errors.New("boom")}
		uc := NewNotifierUsecase(dispatch)

		err := uc.ReportResult(ctx, &models.ContactProfile{Name: "A", Contact: "a@example.com"}, "CAGE Assessment", result)

		assert.Error(t, err)
	})

	t.Run("Configured Reflects Dispatch Credentials", func(t *testing.T) {
		assert.NoError(t, NewNotifierUsecase(&fakeDispatchService{}).Configured())
		assert.Error(t, NewNotifierUsecase(&fakeDispatchService{configuredErr: errors.New("missing public_key")}).Configured())
	})

	t.Run("Subscale Results Render As Pairs", func(t *testing.T) {
		dispatch := &fakeDispatchService{}
		uc := NewNotifierUsecase(dispatch)
		subscaleResult := &models.ScoreResult{
			Subscales: map[string]int{"ee": 30, "dp": 11, "pa": 28},
			Interpretation: models.Interpretation{
				Label:    "High Risk of Burnout",
				Text:     "Your responses suggest a high risk of burnout.",
				Severity: models.SeverityHigh,
			},
		}

		err := uc.ReportResult(ctx, &models.ContactProfile{Name: "A", Contact: "a@example.com"}, "Burnout (Maslach's Inventory)", subscaleResult)

		assert.NoError(t, err)
		assert.Contains(t, dispatch.sent[0].Message, "EE: 30")
		assert.Contains(t, dispatch.sent[0].Message, "DP: 11")
		assert.Contains(t, dispatch.sent[0].Message, "PA: 28")
	})
}
