package config

import (
	"context"
	"database/sql"
	"log"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	PostgresDB     *sql.DB
	Redis          *redis.Client
	Minio          *minio.Client
	Logger         *zap.Logger
	RabbitMQ       *amqp091.Connection
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// MailerWorkerStop and SlotWorkerStop are set once the background workers start.
	MailerWorkerStop func()
	SlotWorkerStop   func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	if b.SlotWorkerStop != nil {
		b.SlotWorkerStop()
		log.Println("Successfully stopped slot cleanup worker")
	}

	if b.MailerWorkerStop != nil {
		b.MailerWorkerStop()
		log.Println("Successfully stopped mailer worker")
	}

	if b.Redis != nil {
		if err := b.Redis.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Redis")
	}

	if b.RabbitMQ != nil && !b.RabbitMQ.IsClosed() {
		if err := b.RabbitMQ.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing RabbitMQ")
	}

	if b.PostgresDB != nil {
		if err := b.PostgresDB.Close(); err != nil {
			return err
		}
		log.Println("Successfully closing Postgres")
	}

	// Sync on stdout/stderr sinks returns EINVAL on some platforms.
	_ = b.Logger.Sync()
	log.Println("Successfully closing Logger")

	return nil
}
