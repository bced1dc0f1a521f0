package routers

import (
	"fmt"

	"serenemind-service/internal/app/services/core/instruments"
	"serenemind-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachInstrumentRoutes(router chi.Router, instrumentController *instruments.InstrumentController) {
	router.Get("/", instrumentController.ListInstruments)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamInstrumentID), instrumentController.FindInstrumentByID)
}
