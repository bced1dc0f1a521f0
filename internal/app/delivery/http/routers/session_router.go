package routers

import (
	"fmt"

	"serenemind-service/internal/app/services/core/sessions"
	"serenemind-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachSessionRoutes(router chi.Router, sessionController *sessions.SessionController) {
	sessionPath := fmt.Sprintf("/{%s}", constvars.URLParamWizardSessionID)

	router.Post("/", sessionController.OpenSession)
	router.Post(sessionPath+"/contact", sessionController.SubmitContact)
	router.Post(sessionPath+"/instrument", sessionController.SelectInstrument)
	router.Post(sessionPath+"/consent", sessionController.ConfirmConsent)
	router.Post(sessionPath+"/consent/cancel", sessionController.CancelConsent)
	router.Delete(sessionPath, sessionController.CloseSession)
}
