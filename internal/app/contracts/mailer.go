package contracts

import (
	"context"

	"serenemind-service/internal/pkg/dto/requests"
)

// MailerService queues boundary email (careers/contact notifications) on the
// message broker; a worker drains the queue over SMTP.
type MailerService interface {
	SendEmail(ctx context.Context, request *requests.EmailPayload) error
}

// EmailDispatchService is the external email-dispatch collaborator used by the
// result notifier. Configured reports whether the dispatch credentials are
// present; Send must fail before any network call when they are not.
type EmailDispatchService interface {
	Configured() error
	Send(ctx context.Context, params *requests.DispatchParams) error
}
