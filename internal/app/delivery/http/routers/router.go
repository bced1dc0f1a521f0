package routers

import (
	"fmt"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/delivery/http/middlewares"
	"serenemind-service/internal/app/services/core/assessments"
	"serenemind-service/internal/app/services/core/auth"
	"serenemind-service/internal/app/services/core/blogs"
	"serenemind-service/internal/app/services/core/careers"
	"serenemind-service/internal/app/services/core/instruments"
	"serenemind-service/internal/app/services/core/payments"
	"serenemind-service/internal/app/services/core/sessions"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	sessionController *sessions.SessionController,
	instrumentController *instruments.InstrumentController,
	assessmentController *assessments.AssessmentController,
	careerController *careers.CareerController,
	paymentController *payments.PaymentController,
	blogController *blogs.BlogController,
	authController *auth.AuthController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	endpointPrefix := fmt.Sprintf("/%s", internalConfig.App.EndpointPrefix)
	versionPrefix := fmt.Sprintf("/%s", internalConfig.App.Version)

	router.Route(endpointPrefix, func(r chi.Router) {
		r.Route(versionPrefix, func(r chi.Router) {
			r.Route("/assessment-sessions", func(r chi.Router) {
				attachSessionRoutes(r, sessionController)
			})

			r.Route("/instruments", func(r chi.Router) {
				attachInstrumentRoutes(r, instrumentController)
			})

			r.Route("/assessments", func(r chi.Router) {
				attachAssessmentRoutes(r, assessmentController)
			})

			r.Route("/careers", func(r chi.Router) {
				attachCareerRoutes(r, middlewares, careerController)
			})

			r.Route("/payments", func(r chi.Router) {
				attachPaymentRoutes(r, paymentController)
			})

			r.Route("/blogs", func(r chi.Router) {
				attachBlogRoutes(r, blogController)
			})

			r.Route("/auth", func(r chi.Router) {
				attachAuthRoutes(r, authController)
			})
		})
	})
}
