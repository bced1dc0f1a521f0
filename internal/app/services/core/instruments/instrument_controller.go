package instruments

import (
	"context"
	"net/http"
	"time"

	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type InstrumentController struct {
	Log               *zap.Logger
	InstrumentUsecase InstrumentUsecase
}

func NewInstrumentController(logger *zap.Logger, instrumentUsecase InstrumentUsecase) *InstrumentController {
	return &InstrumentController{
		Log:               logger,
		InstrumentUsecase: instrumentUsecase,
	}
}

func (ctrl *InstrumentController) ListInstruments(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.InstrumentUsecase.ListInstruments(ctx)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ListInstrumentsSuccessMessage, response)
}

func (ctrl *InstrumentController) FindInstrumentByID(w http.ResponseWriter, r *http.Request) {
	instrumentID := chi.URLParam(r, constvars.URLParamInstrumentID)

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	response, err := ctrl.InstrumentUsecase.FindInstrumentByID(ctx, instrumentID)
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindInstrumentSuccessMessage, response)
}
