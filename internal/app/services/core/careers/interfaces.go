package careers

import (
	"context"

	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
)

type CareerUsecase interface {
	SubmitApplication(ctx context.Context, request *requests.SubmitCareerApplication) (*responses.CareerApplicationSubmitted, error)
	ListApplications(ctx context.Context) ([]models.CareerApplication, error)
}

type CareerRepository interface {
	CreateApplication(ctx context.Context, application *models.CareerApplication) (string, error)
	FindAllApplications(ctx context.Context) ([]models.CareerApplication, error)
}
