package payments

import (
	"context"

	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
)

type PaymentUsecase interface {
	VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.PaymentVerification, error)
}
