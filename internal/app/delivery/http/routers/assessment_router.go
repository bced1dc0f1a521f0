package routers

import (
	"fmt"

	"serenemind-service/internal/app/services/core/assessments"
	"serenemind-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachAssessmentRoutes(router chi.Router, assessmentController *assessments.AssessmentController) {
	runPath := fmt.Sprintf("/{%s}", constvars.URLParamAssessmentRunID)

	router.Post("/", assessmentController.StartRun)
	router.Get(runPath, assessmentController.FindRunByID)
	router.Put(runPath+"/answers", assessmentController.SelectAnswer)
	router.Post(runPath+"/submit", assessmentController.SubmitRun)
	router.Post(runPath+"/retake", assessmentController.RetakeRun)
}
