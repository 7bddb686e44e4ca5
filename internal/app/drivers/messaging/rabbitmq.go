package messaging

import (
	"clinic-bridge-service/internal/app/config"

	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// NewRabbitMQ dials the broker when RABBITMQ_URL is set. It returns nil when
// messaging is disabled or the broker cannot be reached.
func NewRabbitMQ(driverConfig *config.DriverConfig, log *zap.Logger) *amqp091.Connection {
	if driverConfig.RabbitMQ.URL == "" {
		log.Info("RabbitMQ URL not configured, appointment events are disabled")
		return nil
	}
	conn, err := amqp091.Dial(driverConfig.RabbitMQ.URL)
	if err != nil {
		log.Warn("Failed to connect to RabbitMQ, appointment events are disabled", zap.Error(err))
		return nil
	}
	log.Info("Successfully connected to RabbitMQ")
	return conn
}
