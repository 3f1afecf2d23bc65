// Package outboxrepo stores domain events in the transactional outbox and
// hands them to the relay.
package outboxrepo

import (
	"encoding/json"
	"fmt"
	"time"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
	"salesdelivery/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// OutboxMessageDTO is a row of outbox_messages. PublishedAt stays NULL
// until the relay has delivered the message.
type OutboxMessageDTO struct {
	ID          uuid.UUID      `gorm:"type:uuid;primaryKey"`
	EventType   string         `gorm:"size:128;not null"`
	AggregateID uuid.UUID      `gorm:"type:uuid;index;not null"`
	Payload     datatypes.JSON `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time      `gorm:"not null;index"`
	PublishedAt *time.Time     `gorm:"index"`
}

func (OutboxMessageDTO) TableName() string {
	return "outbox_messages"
}

type shipmentCarrierChangedPayload struct {
	OrderID    string    `json:"order_id"`
	Previous   *string   `json:"previous"`
	Current    *string   `json:"current"`
	OccurredAt time.Time `json:"occurred_at"`
}

// fromEvent serialises a domain event into an outbox row.
func fromEvent(event order.DomainEvent) (OutboxMessageDTO, error) {
	var (
		payload    any
		occurredAt time.Time
	)

	switch e := event.(type) {
	case order.ShipmentCarrierChanged:
		payload = shipmentCarrierChangedPayload{
			OrderID:    e.OrderID.String(),
			Previous:   e.Previous,
			Current:    e.Current,
			OccurredAt: e.OccurredAt,
		}
		occurredAt = e.OccurredAt
	default:
		return OutboxMessageDTO{}, fmt.Errorf("unsupported domain event %T", event)
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return OutboxMessageDTO{}, fmt.Errorf("marshal %s: %w", event.EventType(), err)
	}

	return OutboxMessageDTO{
		ID:          uuid.New(),
		EventType:   event.EventType(),
		AggregateID: event.AggregateID().Bytes(),
		Payload:     datatypes.JSON(body),
		OccurredAt:  occurredAt,
	}, nil
}

func toMessage(dto OutboxMessageDTO) (ports.OutboxMessage, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}
	aggregateID, err := kernel.UUIDFromBytes(dto.AggregateID[:])
	if err != nil {
		return ports.OutboxMessage{}, err
	}

	return ports.OutboxMessage{
		ID:          id,
		EventType:   dto.EventType,
		AggregateID: aggregateID,
		Payload:     []byte(dto.Payload),
		OccurredAt:  dto.OccurredAt,
	}, nil
}
