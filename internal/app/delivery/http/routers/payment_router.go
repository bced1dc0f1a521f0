package routers

import (
	"serenemind-service/internal/app/services/core/payments"

	"github.com/go-chi/chi/v5"
)

func attachPaymentRoutes(router chi.Router, paymentController *payments.PaymentController) {
	router.Post("/verify", paymentController.VerifyPayment)
}
