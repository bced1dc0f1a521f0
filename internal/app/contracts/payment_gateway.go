package contracts

import (
	"context"

	"serenemind-service/internal/pkg/dto/responses"
)

type PaymentGatewayService interface {
	VerifyPayment(ctx context.Context, reference string) (*responses.PaymentVerification, error)
}
