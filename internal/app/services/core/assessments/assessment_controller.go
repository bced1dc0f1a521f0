package assessments

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase AssessmentUsecase
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase AssessmentUsecase) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
	}
}

func (ctrl *AssessmentController) StartRun(w http.ResponseWriter, r *http.Request) {
	request := new(requests.StartAssessmentRun)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.StartRun(ctx, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.StartAssessmentRunSuccessMessage, response)
}

func (ctrl *AssessmentController) SelectAnswer(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, constvars.URLParamAssessmentRunID)

	request := new(requests.SelectAnswer)
	err := json.NewDecoder(r.Body).Decode(&request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SelectAnswer(ctx, runID, request)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SelectAnswerSuccessMessage, response)
}

func (ctrl *AssessmentController) FindRunByID(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, constvars.URLParamAssessmentRunID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.FindRunByID(ctx, runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentRunSuccessMessage, response)
}

func (ctrl *AssessmentController) SubmitRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, constvars.URLParamAssessmentRunID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.SubmitRun(ctx, runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.SubmitAssessmentSuccessMessage, response)
}

func (ctrl *AssessmentController) RetakeRun(w http.ResponseWriter, r *http.Request) {
	runID := chi.URLParam(r, constvars.URLParamAssessmentRunID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.AssessmentUsecase.RetakeRun(ctx, runID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RetakeAssessmentSuccessMessage, response)
}
