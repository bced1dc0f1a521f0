package notifications

import (
	"context"
	"regexp"
	"time"

	"serenemind-service/internal/app/contracts"
	"serenemind-service/internal/app/models"
	"serenemind-service/internal/pkg/constvars"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/utils"
)

var emailRegex = regexp.MustCompile(constvars.RegexEmail)

type notifierUsecase struct {
	EmailDispatchService contracts.EmailDispatchService
}

func NewNotifierUsecase(emailDispatchService contracts.EmailDispatchService) NotifierUsecase {
	return &notifierUsecase{
		EmailDispatchService: emailDispatchService,
	}
}

func (uc *notifierUsecase) Configured() error {
	return uc.EmailDispatchService.Configured()
}

func (uc *notifierUsecase) ReportResult(ctx context.Context, contact *models.ContactProfile, instrumentName string, result *models.ScoreResult) error {
	params := &requests.DispatchParams{
		Name:    contact.Name,
		Title:   instrumentName,
		Message: utils.FormatAssessmentResult(instrumentName, result, time.Now().UTC()),
	}

	// The wizard captures a single reachability field; the dispatch template
	// has separate email and phone slots.
	if emailRegex.MatchString(contact.Contact) {
		params.Email = contact.Contact
	} else {
		params.Phone = contact.Contact
	}

	return uc.EmailDispatchService.Send(ctx, params)
}
