package ports

import (
	"context"
	"time"

	"salesdelivery/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event waiting to be published.
type OutboxMessage struct {
	ID          kernel.UUID
	EventType   string
	AggregateID kernel.UUID
	Payload     []byte
	OccurredAt  time.Time
}

// OutboxRepository reads and acknowledges stored events. Messages are
// written by the order repository in the same transaction as the order.
type OutboxRepository interface {
	// GetUnpublished locks and returns up to limit messages, oldest first.
	// Rows locked by a concurrent relay are skipped.
	GetUnpublished(ctx context.Context, limit int) ([]OutboxMessage, error)

	MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error
}

// EventPublisher delivers an outbox message to the message broker.
type EventPublisher interface {
	Publish(ctx context.Context, msg OutboxMessage) error
}
