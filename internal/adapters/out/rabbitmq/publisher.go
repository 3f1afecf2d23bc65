package rabbitmq

import (
	"context"
	"fmt"
	"time"

	"salesdelivery/internal/core/ports"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const defaultPublishTimeout = 5 * time.Second

type channelSource interface {
	Acquire() (Channel, error)
	Release(ch Channel)
}

// EventPublisher implements ports.EventPublisher. Messages go to the
// default exchange routed by queue name, persistent, with the event type in
// both the AMQP type property and the "event_type" header.
type EventPublisher struct {
	channels  channelSource
	queueName string
	timeout   time.Duration
	logger    *zap.Logger
}

func NewEventPublisher(channels channelSource, queueName string, logger *zap.Logger) *EventPublisher {
	return &EventPublisher{
		channels:  channels,
		queueName: queueName,
		timeout:   defaultPublishTimeout,
		logger:    logger.With(zap.String("component", "event_publisher")),
	}
}

func (p *EventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	ch, err := p.channels.Acquire()
	if err != nil {
		return fmt.Errorf("get channel from pool: %w", err)
	}
	defer p.channels.Release(ch)

	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	err = ch.PublishWithContext(ctx,
		"",          // default exchange
		p.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			DeliveryMode: amqp.Persistent,
			ContentType:  "application/json",
			MessageId:    msg.ID.String(),
			Type:         msg.EventType,
			Timestamp:    msg.OccurredAt,
			Headers: amqp.Table{
				"event_type":   msg.EventType,
				"aggregate_id": msg.AggregateID.String(),
			},
			Body: msg.Payload,
		})
	if err != nil {
		return fmt.Errorf("publish %s: %w", msg.EventType, err)
	}

	p.logger.Debug("published outbox message",
		zap.String("message_id", msg.ID.String()),
		zap.String("event_type", msg.EventType),
		zap.String("aggregate_id", msg.AggregateID.String()),
	)
	return nil
}
