package careers

import (
	"context"
	"net/http"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type CareerController struct {
	Log            *zap.Logger
	CareerUsecase  CareerUsecase
	InternalConfig *config.InternalConfig
}

func NewCareerController(logger *zap.Logger, careerUsecase CareerUsecase, internalConfig *config.InternalConfig) *CareerController {
	return &CareerController{
		Log:            logger,
		CareerUsecase:  careerUsecase,
		InternalConfig: internalConfig,
	}
}

func (ctrl *CareerController) SubmitApplication(w http.ResponseWriter, r *http.Request) {
	maxUploadBytes := int64(ctrl.InternalConfig.App.CareersMaxUploadSizeInMB) << 20
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseMultipartForm(err))
		return
	}

	request := &requests.SubmitCareerApplication{
		Name:    r.FormValue("name"),
		Email:   r.FormValue("email"),
		Phone:   r.FormValue("phone"),
		Message: r.FormValue("message"),
	}
	if _, fileHeader, err := r.FormFile("cv"); err == nil {
		request.CV = fileHeader
	}
	if _, fileHeader, err := r.FormFile("cover_letter"); err == nil {
		request.CoverLetter = fileHeader
	}

	ctx, cancel := context.WithTimeout(r.Context(), 30*time.Second)
	defer cancel()

	response, err := ctrl.CareerUsecase.SubmitApplication(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.SubmitCareerApplicationSuccessMessage, response)
}

func (ctrl *CareerController) ListApplications(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.CareerUsecase.ListApplications(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListCareerApplicationsSuccessMessage, response)
}
