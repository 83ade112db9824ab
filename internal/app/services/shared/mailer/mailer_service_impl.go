package mailer

import (
	"context"
	"sync"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type publisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type mailerService struct {
	Channel publisher
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewMailerService opens a channel on conn and declares queue as durable.
// SendEmail only enqueues; the Worker does the SMTP delivery.
func NewMailerService(rabbitMQConnection *amqp091.Connection, queue string, logger *zap.Logger) (contracts.MailerService, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	if err := declareQueue(channel, queue); err != nil {
		return nil, err
	}

	return &mailerService{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}, nil
}

func (s *mailerService) SendEmail(ctx context.Context, payload *requests.EmailPayload) error {
	requestID, _ := ctx.Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	s.Log.Info("mailerService.SendEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)

	body, err := json.Marshal(payload)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    requestID,
	}

	s.mu.Lock()
	err = s.Channel.PublishWithContext(ctx, "", s.Queue, false, false, message)
	s.mu.Unlock()
	if err != nil {
		s.Log.Error("mailerService.SendEmail error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, s.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, s.Queue)
	}

	s.Log.Info("mailerService.SendEmail succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, s.Queue),
	)
	return nil
}

func declareQueue(channel *amqp091.Channel, queue string) error {
	_, err := channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	return err
}
