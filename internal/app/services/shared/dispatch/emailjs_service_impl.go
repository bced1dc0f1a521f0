package dispatch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"serenemind-service/internal/app/config"
	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
)

// emailJSService calls the hosted email-dispatch collaborator. The call shape
// is send(serviceId, templateId, templateParams, publicKey); all three
// credentials must be configured or Send fails before any network activity.
type emailJSService struct {
	baseURL    string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

type sendRequestBody struct {
	ServiceID      string                  `json:"service_id"`
	TemplateID     string                  `json:"template_id"`
	UserID         string                  `json:"user_id"`
	TemplateParams *requests.DispatchParams `json:"template_params"`
}

func NewEmailJSService(internalConfig *config.InternalConfig) contracts.EmailDispatchService {
	timeout := time.Duration(internalConfig.Assessment.DispatchTimeoutInSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &emailJSService{
		baseURL:    internalConfig.EmailJS.BaseURL,
		serviceID:  internalConfig.EmailJS.ServiceID,
		templateID: internalConfig.EmailJS.TemplateID,
		publicKey:  internalConfig.EmailJS.PublicKey,
		client:     &http.Client{Timeout: timeout},
	}
}

func (s *emailJSService) Configured() error {
	return s.checkCredentials()
}

func (s *emailJSService) Send(ctx context.Context, params *requests.DispatchParams) error {
	if err := s.checkCredentials(); err != nil {
		return err
	}

	body, err := json.Marshal(&sendRequestBody{
		ServiceID:      s.serviceID,
		TemplateID:     s.templateID,
		UserID:         s.publicKey,
		TemplateParams: params,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	request, err := http.NewRequestWithContext(ctx, http.MethodPost, s.baseURL, bytes.NewReader(body))
	if err != nil {
		return exceptions.ErrDispatchSendFailed(err)
	}
	request.Header.Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)

	response, err := s.client.Do(request)
	if err != nil {
		return exceptions.ErrDispatchSendFailed(err)
	}
	defer response.Body.Close()

	if response.StatusCode < 200 || response.StatusCode > 299 {
		responseBody, _ := io.ReadAll(io.LimitReader(response.Body, 2048))
		return exceptions.ErrDispatchSendFailed(fmt.Errorf("status %d: %s", response.StatusCode, string(responseBody)))
	}

	return nil
}

func (s *emailJSService) checkCredentials() error {
	switch {
	case s.serviceID == "":
		return exceptions.ErrDispatchConfigMissing("service_id")
	case s.templateID == "":
		return exceptions.ErrDispatchConfigMissing("template_id")
	case s.publicKey == "":
		return exceptions.ErrDispatchConfigMissing("public_key")
	}
	return nil
}
