package messaging

import (
	"log"
	"net"
	"net/url"
	"time"
	"valivio-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
)

const connectionName = "valivio-service"

func NewRabbitMQ(driverConfig *config.DriverConfig) *amqp091.Connection {
	amqpURL := url.URL{
		Scheme: "amqp",
		User:   url.UserPassword(driverConfig.RabbitMQ.Username, driverConfig.RabbitMQ.Password),
		Host:   net.JoinHostPort(driverConfig.RabbitMQ.Host, driverConfig.RabbitMQ.Port),
		Path:   "/",
	}

	properties := amqp091.NewConnectionProperties()
	properties.SetClientConnectionName(connectionName)

	conn, err := amqp091.DialConfig(amqpURL.String(), amqp091.Config{
		Heartbeat:  10 * time.Second,
		Locale:     "en_US",
		Properties: properties,
	})
	if err != nil {
		log.Fatalf("Failed to connect to rabbitMQ at %s: %s", amqpURL.Redacted(), err.Error())
	}
	log.Printf("Successfully connected to rabbitMQ at %s", amqpURL.Host)
	return conn
}
