package payments

import (
	"context"

	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"
	"serenemind-service/internal/pkg/utils"
)

type paymentUsecase struct {
	PaymentGatewayService contracts.PaymentGatewayService
}

func NewPaymentUsecase(paymentGatewayService contracts.PaymentGatewayService) PaymentUsecase {
	return &paymentUsecase{
		PaymentGatewayService: paymentGatewayService,
	}
}

func (uc *paymentUsecase) VerifyPayment(ctx context.Context, request *requests.VerifyPayment) (*responses.PaymentVerification, error) {
	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}
	return uc.PaymentGatewayService.VerifyPayment(ctx, request.Reference)
}
