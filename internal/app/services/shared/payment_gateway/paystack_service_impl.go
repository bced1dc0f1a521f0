package payment_gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/pkg/dto/responses"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

type paystackService struct {
	baseURL   string
	secretKey string
	client    *http.Client
}

type verifyResponseBody struct {
	Status bool `json:"status"`
	Data   struct {
		Status    string `json:"status"`
		Amount    int64  `json:"amount"`
		Reference string `json:"reference"`
		Customer  struct {
			Email string `json:"email"`
		} `json:"customer"`
	} `json:"data"`
}

func NewPaystackService(internalConfig *config.InternalConfig) contracts.PaymentGatewayService {
	return &paystackService{
		baseURL:   internalConfig.PaymentGateway.BaseURL,
		secretKey: internalConfig.PaymentGateway.SecretKey,
		client:    &http.Client{Timeout: 15 * time.Second},
	}
}

func (s *paystackService) VerifyPayment(ctx context.Context, reference string) (*responses.PaymentVerification, error) {
	endpoint := fmt.Sprintf("%s/transaction/verify/%s", s.baseURL, url.PathEscape(reference))
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayCall(err)
	}
	request.Header.Set("Authorization", "Bearer "+s.secretKey)

	response, err := s.client.Do(request)
	if err != nil {
		return nil, exceptions.ErrPaymentGatewayCall(err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		return nil, exceptions.ErrPaymentGatewayCall(fmt.Errorf("status %d", response.StatusCode))
	}

	var body verifyResponseBody
	if err := json.NewDecoder(response.Body).Decode(&body); err != nil {
		return nil, exceptions.ErrPaymentGatewayCall(err)
	}

	return &responses.PaymentVerification{
		Success:   body.Status && body.Data.Status == "success",
		Amount:    body.Data.Amount,
		Reference: body.Data.Reference,
		Email:     body.Data.Customer.Email,
	}, nil
}
