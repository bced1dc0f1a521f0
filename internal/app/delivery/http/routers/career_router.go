package routers

import (
	"serenemind-service/internal/app/delivery/http/middlewares"
	"serenemind-service/internal/app/services/core/careers"

	"github.com/go-chi/chi/v5"
)

func attachCareerRoutes(router chi.Router, middlewares *middlewares.Middlewares, careerController *careers.CareerController) {
	router.Post("/applications", careerController.SubmitApplication)
	router.With(middlewares.AdminAuth).Get("/applications", careerController.ListApplications)
}
