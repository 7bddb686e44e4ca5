package events

import (
	"clinic-bridge-service/internal/app/contracts"
	"clinic-bridge-service/internal/pkg/constvars"
	"clinic-bridge-service/internal/pkg/exceptions"
	"clinic-bridge-service/internal/pkg/utils"
	"context"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// amqpChannel is the subset of *amqp091.Channel used for publishing.
type amqpChannel interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type Envelope struct {
	Event      string      `json:"event"`
	RequestID  string      `json:"requestId,omitempty"`
	OccurredAt string      `json:"occurredAt"`
	Payload    interface{} `json:"payload"`
}

type rabbitMQEventPublisher struct {
	Channel amqpChannel
	Queue   string
	Timeout time.Duration
	Log     *zap.Logger
}

// NewEventPublisher publishes to a durable queue on the given connection, or
// returns a publisher that drops events when the connection is nil.
func NewEventPublisher(rabbitMQConnection *amqp091.Connection, queue string, timeout time.Duration, logger *zap.Logger) (contracts.EventPublisher, error) {
	if rabbitMQConnection == nil {
		return NewNoopEventPublisher(logger), nil
	}

	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}
	if _, err := channel.QueueDeclare(queue, true, false, false, false, nil); err != nil {
		return nil, err
	}

	return newRabbitMQEventPublisher(channel, queue, timeout, logger), nil
}

func newRabbitMQEventPublisher(channel amqpChannel, queue string, timeout time.Duration, logger *zap.Logger) *rabbitMQEventPublisher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &rabbitMQEventPublisher{
		Channel: channel,
		Queue:   queue,
		Timeout: timeout,
		Log:     logger,
	}
}

func (p *rabbitMQEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(Envelope{
		Event:      routingKey,
		RequestID:  requestID,
		OccurredAt: utils.Timestamp(),
		Payload:    payload,
	})
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		Timestamp:    time.Now(),
		Type:         routingKey,
		Headers: amqp091.Table{
			"message_type": "JSON",
			"event":        routingKey,
		},
	}

	publishCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.Timeout)
	defer cancel()

	if err := p.Channel.PublishWithContext(publishCtx, "", p.Queue, false, false, message); err != nil {
		return fmt.Errorf(constvars.ErrDevPublishEvent+": %w", p.Queue, err)
	}

	p.Log.Info("rabbitMQEventPublisher.Publish event published",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String("event", routingKey),
		zap.String("queue", p.Queue),
	)
	return nil
}

type noopEventPublisher struct {
	Log *zap.Logger
}

func NewNoopEventPublisher(logger *zap.Logger) contracts.EventPublisher {
	return &noopEventPublisher{Log: logger}
}

func (p *noopEventPublisher) Publish(ctx context.Context, routingKey string, payload interface{}) error {
	p.Log.Debug("noopEventPublisher.Publish event dropped",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String("event", routingKey),
	)
	return nil
}
