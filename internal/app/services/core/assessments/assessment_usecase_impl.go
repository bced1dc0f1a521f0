package assessments

import (
	"context"
	"fmt"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/app/services/core/instruments"
	"serenemind-service/internal/app/services/core/notifications"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	Log             *zap.Logger
	RedisRepository contracts.RedisRepository
	NotifierUsecase notifications.NotifierUsecase
	InternalConfig  *config.InternalConfig
}

func NewAssessmentUsecase(
	logger *zap.Logger,
	redisRepository contracts.RedisRepository,
	notifierUsecase notifications.NotifierUsecase,
	internalConfig *config.InternalConfig,
) AssessmentUsecase {
	return &assessmentUsecase{
		Log:             logger,
		RedisRepository: redisRepository,
		NotifierUsecase: notifierUsecase,
		InternalConfig:  internalConfig,
	}
}

func (uc *assessmentUsecase) StartRun(ctx context.Context, request *requests.StartAssessmentRun) (*responses.AssessmentRunState, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	spec, ok := instruments.Lookup(request.InstrumentID)
	if !ok {
		return nil, exceptions.ErrUnknownInstrument(request.InstrumentID)
	}

	var contact *models.ContactProfile
	if request.HandoffToken != "" {
		handoff, err := uc.consumeHandoff(ctx, request.HandoffToken)
		if err != nil {
			return nil, err
		}
		contact = &handoff.Contact
	}

	now := time.Now().UTC()
	run := &models.AssessmentRun{
		ID:             uuid.New().String(),
		InstrumentID:   spec.ID,
		Mode:           models.RunModeCollecting,
		Contact:        contact,
		Answers:        models.AnswerSet{},
		DeliveryStatus: models.DeliveryStatusIdle,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := uc.saveRun(ctx, run); err != nil {
		return nil, err
	}

	return buildRunState(run, spec), nil
}

func (uc *assessmentUsecase) SelectAnswer(ctx context.Context, runID string, request *requests.SelectAnswer) (*responses.AssessmentRunState, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	run, spec, err := uc.findRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Mode != models.RunModeCollecting {
		return nil, exceptions.ErrRunAlreadyScored()
	}

	if _, ok := spec.QuestionByID(request.QuestionID); !ok {
		return nil, exceptions.ErrUnknownQuestion(request.QuestionID, spec.ID)
	}
	if !spec.OnScale(request.Value) {
		return nil, exceptions.ErrAnswerOutOfScale(request.Value, spec.ID)
	}

	// Re-answering a question overwrites the previous value.
	run.Answers[request.QuestionID] = request.Value

	if err := uc.saveRun(ctx, run); err != nil {
		return nil, err
	}

	return buildRunState(run, spec), nil
}

func (uc *assessmentUsecase) FindRunByID(ctx context.Context, runID string) (*responses.AssessmentRunState, error) {
	run, spec, err := uc.findRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	return buildRunState(run, spec), nil
}

func (uc *assessmentUsecase) SubmitRun(ctx context.Context, runID string) (*responses.AssessmentRunState, error) {
	run, spec, err := uc.findRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Mode != models.RunModeCollecting {
		return nil, exceptions.ErrRunAlreadyScored()
	}
	if !spec.IsComplete(run.Answers) {
		return nil, exceptions.ErrAnswerSetIncomplete(len(run.Answers), len(spec.Questions))
	}

	run.Result = spec.Score(run.Answers)
	run.Mode = models.RunModeResults

	// Missing dispatch credentials fail the delivery up front: the status goes
	// straight to error and no send is attempted.
	if run.Contact != nil {
		if err := uc.NotifierUsecase.Configured(); err != nil {
			uc.Log.Error("result notification unavailable",
				zap.String("run_id", run.ID),
				zap.Error(err),
			)
			run.DeliveryStatus = models.DeliveryStatusError
		} else {
			run.DeliveryStatus = models.DeliveryStatusSending
		}
	}

	if err := uc.saveRun(ctx, run); err != nil {
		return nil, err
	}

	// Results are shown immediately; the reviewer notification runs in the
	// background and reports its outcome through the run's delivery status.
	if run.DeliveryStatus == models.DeliveryStatusSending {
		go uc.notifyReviewer(run.ID, *run.Contact, spec.DisplayName, run.Result)
	}

	return buildRunState(run, spec), nil
}

func (uc *assessmentUsecase) RetakeRun(ctx context.Context, runID string) (*responses.AssessmentRunState, error) {
	run, spec, err := uc.findRun(ctx, runID)
	if err != nil {
		return nil, err
	}
	if run.Mode != models.RunModeResults {
		return nil, exceptions.ErrRunNotScored()
	}

	// The contact profile survives a retake so the next submission is still
	// attributable without re-running the wizard.
	run.Mode = models.RunModeCollecting
	run.Answers = models.AnswerSet{}
	run.Result = nil
	run.DeliveryStatus = models.DeliveryStatusIdle

	if err := uc.saveRun(ctx, run); err != nil {
		return nil, err
	}

	return buildRunState(run, spec), nil
}

// notifyReviewer delivers the scored result and records the outcome on the
// run. A retake while the send is in flight resets the status to idle; the
// stale outcome must not overwrite it.
func (uc *assessmentUsecase) notifyReviewer(runID string, contact models.ContactProfile, instrumentName string, result *models.ScoreResult) {
	timeout := time.Duration(uc.InternalConfig.Assessment.DispatchTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	status := models.DeliveryStatusSent
	if err := uc.NotifierUsecase.ReportResult(ctx, &contact, instrumentName, result); err != nil {
		uc.Log.Error("result notification failed",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		status = models.DeliveryStatusError
	}

	// The send may have used up the whole timeout; the status write gets its
	// own deadline.
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	run, _, err := uc.findRun(ctx, runID)
	if err != nil {
		uc.Log.Error("cannot record delivery status",
			zap.String("run_id", runID),
			zap.Error(err),
		)
		return
	}
	if run.DeliveryStatus != models.DeliveryStatusSending {
		return
	}

	run.DeliveryStatus = status
	if err := uc.saveRun(ctx, run); err != nil {
		uc.Log.Error("cannot record delivery status",
			zap.String("run_id", runID),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) consumeHandoff(ctx context.Context, token string) (*models.ContactHandoff, error) {
	key := fmt.Sprintf(constvars.RedisKeyContactHandoffFormat, token)
	handoffJSON, err := uc.RedisRepository.GetDel(ctx, key)
	if err != nil {
		return nil, err
	}
	if handoffJSON == "" {
		return nil, exceptions.ErrHandoffTokenInvalid(nil)
	}

	handoff := new(models.ContactHandoff)
	if err := json.Unmarshal([]byte(handoffJSON), handoff); err != nil {
		return nil, exceptions.ErrCannotUnmarshalJSON(err)
	}
	return handoff, nil
}

func (uc *assessmentUsecase) findRun(ctx context.Context, runID string) (*models.AssessmentRun, *instruments.InstrumentSpec, error) {
	key := fmt.Sprintf(constvars.RedisKeyAssessmentRunFormat, runID)
	runJSON, err := uc.RedisRepository.Get(ctx, key)
	if err != nil {
		return nil, nil, err
	}
	if runJSON == "" {
		return nil, nil, exceptions.ErrAssessmentRunNotFound(nil)
	}

	run := new(models.AssessmentRun)
	if err := json.Unmarshal([]byte(runJSON), run); err != nil {
		return nil, nil, exceptions.ErrCannotUnmarshalJSON(err)
	}

	spec, ok := instruments.Lookup(run.InstrumentID)
	if !ok {
		return nil, nil, exceptions.ErrUnknownInstrument(run.InstrumentID)
	}
	return run, spec, nil
}

func (uc *assessmentUsecase) saveRun(ctx context.Context, run *models.AssessmentRun) error {
	run.UpdatedAt = time.Now().UTC()
	key := fmt.Sprintf(constvars.RedisKeyAssessmentRunFormat, run.ID)
	ttl := time.Duration(uc.InternalConfig.Assessment.RunTTLInMinutes) * time.Minute
	return uc.RedisRepository.Set(ctx, key, run, ttl)
}

func buildRunState(run *models.AssessmentRun, spec *instruments.InstrumentSpec) *responses.AssessmentRunState {
	return &responses.AssessmentRunState{
		RunID:          run.ID,
		InstrumentID:   run.InstrumentID,
		Mode:           run.Mode,
		Answered:       len(run.Answers),
		QuestionCount:  len(spec.Questions),
		IsComplete:     spec.IsComplete(run.Answers),
		HasContact:     run.Contact != nil,
		Result:         run.Result,
		DeliveryStatus: run.DeliveryStatus,
	}
}
