package mailer

import (
	"context"
	"sync"
	"time"
	"valivio-service/internal/app/contracts"
	"valivio-service/internal/pkg/constvars"
	"valivio-service/internal/pkg/dto/requests"
	"valivio-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const (
	smtpRetryBaseDelay = 2 * time.Second
	smtpRetryMaxDelay  = time.Minute
)

// Worker consumes queued e-mails and hands them to SMTP.
type Worker struct {
	log    *zap.Logger
	conn   *amqp091.Connection
	queue  string
	smtp   contracts.SMTPService
	cancel context.CancelFunc
	wg     sync.WaitGroup

	// consecutive SMTP failures; only touched by the consume goroutine
	failures int
	wait     func(ctx context.Context, d time.Duration)
}

func NewWorker(log *zap.Logger, conn *amqp091.Connection, queue string, smtpService contracts.SMTPService) *Worker {
	return &Worker{log: log, conn: conn, queue: queue, smtp: smtpService, wait: waitOrDone}
}

func waitOrDone(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

// retryDelay doubles per consecutive failure, capped at smtpRetryMaxDelay.
func retryDelay(failures int) time.Duration {
	delay := smtpRetryBaseDelay
	for i := 1; i < failures && delay < smtpRetryMaxDelay; i++ {
		delay *= 2
	}
	if delay > smtpRetryMaxDelay {
		delay = smtpRetryMaxDelay
	}
	return delay
}

// Start begins consuming in the background. Stop cancels and waits.
func (w *Worker) Start(ctx context.Context) error {
	channel, err := w.conn.Channel()
	if err != nil {
		return exceptions.ErrRabbitMQConsume(err, w.queue)
	}
	if err := declareQueue(channel, w.queue); err != nil {
		channel.Close()
		return exceptions.ErrRabbitMQConsume(err, w.queue)
	}
	if err := channel.Qos(1, 0, false); err != nil {
		channel.Close()
		return exceptions.ErrRabbitMQConsume(err, w.queue)
	}

	deliveries, err := channel.Consume(
		w.queue, // queue
		"",      // consumer
		false,   // autoAck
		false,   // exclusive
		false,   // noLocal
		false,   // noWait
		nil,     // args
	)
	if err != nil {
		channel.Close()
		return exceptions.ErrRabbitMQConsume(err, w.queue)
	}

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		defer channel.Close()
		w.consume(runCtx, deliveries)
	}()

	w.log.Info("mailer.worker: consuming", zap.String(constvars.LoggingQueueKey, w.queue))
	return nil
}

func (w *Worker) Stop() {
	if w.cancel != nil {
		w.cancel()
	}
	w.wg.Wait()
}

func (w *Worker) consume(ctx context.Context, deliveries <-chan amqp091.Delivery) {
	for {
		select {
		case <-ctx.Done():
			return
		case delivery, ok := <-deliveries:
			if !ok {
				w.log.Warn("mailer.worker: delivery channel closed", zap.String(constvars.LoggingQueueKey, w.queue))
				return
			}
			w.handleDelivery(ctx, delivery)
		}
	}
}

// handleDelivery acks on success and drops undecodable payloads. On SMTP
// failure it backs off before requeueing, so a down server is not hammered.
func (w *Worker) handleDelivery(ctx context.Context, delivery amqp091.Delivery) {
	msgCtx := context.WithValue(ctx, constvars.CONTEXT_REQUEST_ID_KEY, delivery.MessageId)

	var payload requests.EmailPayload
	if err := json.Unmarshal(delivery.Body, &payload); err != nil || payload.To == "" {
		w.log.Error("mailer.worker: dropping undecodable message",
			zap.String(constvars.LoggingRequestIDKey, delivery.MessageId),
			zap.Error(err),
		)
		delivery.Nack(false, false)
		return
	}

	if err := w.smtp.SendEmail(msgCtx, &payload); err != nil {
		w.failures++
		delay := retryDelay(w.failures)
		w.log.Error("mailer.worker: smtp delivery failed, requeueing",
			zap.String(constvars.LoggingRequestIDKey, delivery.MessageId),
			zap.String(constvars.LoggingEmailToKey, payload.To),
			zap.Int("consecutive_failures", w.failures),
			zap.Duration("retry_in", delay),
			zap.Error(err),
		)
		w.wait(ctx, delay)
		delivery.Nack(false, true)
		return
	}

	w.failures = 0
	delivery.Ack(false)
}
