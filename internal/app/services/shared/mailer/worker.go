package mailer

import (
	"context"
	"fmt"
	"net/smtp"

	"serenemind-service/internal/app/drivers/mailer"
	"serenemind-service/internal/pkg/dto/requests"
	"serenemind-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Worker drains the mailer queue and delivers each payload over SMTP.
// Delivery is best effort: a failed send is logged and the message dropped,
// matching the queue's DROP requeue strategy.
type Worker struct {
	log     *zap.Logger
	channel *amqp091.Channel
	client  *mailer.SMTPClient
	queue   string
	stop    chan struct{}
}

func NewWorker(log *zap.Logger, rabbitMQConnection *amqp091.Connection, client *mailer.SMTPClient, queue string) (*Worker, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	return &Worker{
		log:     log,
		channel: channel,
		client:  client,
		queue:   queue,
		stop:    make(chan struct{}),
	}, nil
}

// Start begins consuming. It returns a stop function to halt execution.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	deliveries, err := w.channel.Consume(w.queue, "", false, false, false, false, nil)
	if err != nil {
		return nil, err
	}

	stopped := make(chan struct{})
	go func() {
		defer close(stopped)
		for {
			select {
			case <-ctx.Done():
				return
			case <-w.stop:
				return
			case delivery, ok := <-deliveries:
				if !ok {
					return
				}
				w.handleDelivery(delivery)
			}
		}
	}()

	return func() {
		close(w.stop)
	}, nil
}

func (w *Worker) handleDelivery(delivery amqp091.Delivery) {
	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil {
		w.log.Error("mailer.worker cannot decode payload",
			zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	if err := w.sendOverSMTP(&payload); err != nil {
		w.log.Error("mailer.worker smtp send failed",
			zap.String("subject", payload.Subject),
			zap.Error(err))
		delivery.Nack(false, false)
		return
	}

	delivery.Ack(false)
	w.log.Info("mailer.worker email delivered",
		zap.String("subject", payload.Subject))
}

func (w *Worker) sendOverSMTP(payload *requests.EmailPayload) error {
	from := payload.From
	if from == "" {
		from = w.client.EmailSender
	}
	addr := fmt.Sprintf("%s:%d", w.client.Host, w.client.Port)
	for _, to := range payload.To {
		msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\n\r\n%s\r\n", to, payload.Subject, payload.Body))
		if err := smtp.SendMail(addr, w.client.Auth, from, []string{to}, msg); err != nil {
			return exceptions.ErrSMTPSendEmail(err, w.client.Host)
		}
	}
	return nil
}
