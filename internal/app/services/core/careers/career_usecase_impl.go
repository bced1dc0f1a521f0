package careers

import (
	"context"
	"mime/multipart"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type careerUsecase struct {
	Log              *zap.Logger
	CareerRepository CareerRepository
	Storage          contracts.Storage
	MailerService    contracts.MailerService
	DriverConfig     *config.DriverConfig
	InternalConfig   *config.InternalConfig
}

func NewCareerUsecase(
	logger *zap.Logger,
	careerRepository CareerRepository,
	storage contracts.Storage,
	mailerService contracts.MailerService,
	driverConfig *config.DriverConfig,
	internalConfig *config.InternalConfig,
) CareerUsecase {
	return &careerUsecase{
		Log:              logger,
		CareerRepository: careerRepository,
		Storage:          storage,
		MailerService:    mailerService,
		DriverConfig:     driverConfig,
		InternalConfig:   internalConfig,
	}
}

func (uc *careerUsecase) SubmitApplication(ctx context.Context, request *requests.SubmitCareerApplication) (*responses.CareerApplicationSubmitted, error) {
	utils.SanitizeCareerApplicationRequest(request)
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	if request.CV == nil {
		return nil, exceptions.ErrCareerCVRequired(nil)
	}

	cvFileID, err := uc.uploadAttachment(ctx, request.CV)
	if err != nil {
		return nil, err
	}

	var coverLetterFileID string
	if request.CoverLetter != nil {
		coverLetterFileID, err = uc.uploadAttachment(ctx, request.CoverLetter)
		if err != nil {
			return nil, err
		}
	}

	application := &models.CareerApplication{
		Name:              request.Name,
		Email:             request.Email,
		Phone:             request.Phone,
		Message:           request.Message,
		CVFileID:          cvFileID,
		CoverLetterFileID: coverLetterFileID,
		SubmittedAt:       time.Now().UTC(),
	}

	applicationID, err := uc.CareerRepository.CreateApplication(ctx, application)
	if err != nil {
		return nil, err
	}

	// The notification is best-effort; a broker outage must not lose the
	// application itself.
	emailPayload := utils.BuildCareerApplicationEmailPayload(
		uc.InternalConfig.App.MailerEmailSender,
		uc.InternalConfig.App.CareersNotifyEmail,
		request,
	)
	if err := uc.MailerService.SendEmail(ctx, emailPayload); err != nil {
		uc.Log.Error("cannot queue career application notification",
			zap.String("application_id", applicationID),
			zap.Error(err),
		)
	}

	return &responses.CareerApplicationSubmitted{
		ApplicationID: applicationID,
		CVFileID:      cvFileID,
	}, nil
}

func (uc *careerUsecase) ListApplications(ctx context.Context) ([]models.CareerApplication, error) {
	return uc.CareerRepository.FindAllApplications(ctx)
}

func (uc *careerUsecase) uploadAttachment(ctx context.Context, fileHeader *multipart.FileHeader) (string, error) {
	file, err := fileHeader.Open()
	if err != nil {
		return "", exceptions.ErrCannotParseMultipartForm(err)
	}
	defer file.Close()

	return uc.Storage.UploadFile(ctx, file, fileHeader, uc.DriverConfig.Minio.BucketName)
}
