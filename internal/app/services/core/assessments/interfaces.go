package assessments

import (
	"context"

	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
)

type AssessmentUsecase interface {
	StartRun(ctx context.Context, request *requests.StartAssessmentRun) (*responses.AssessmentRunState, error)
	SelectAnswer(ctx context.Context, runID string, request *requests.SelectAnswer) (*responses.AssessmentRunState, error)
	FindRunByID(ctx context.Context, runID string) (*responses.AssessmentRunState, error)
	SubmitRun(ctx context.Context, runID string) (*responses.AssessmentRunState, error)
	RetakeRun(ctx context.Context, runID string) (*responses.AssessmentRunState, error)
}
