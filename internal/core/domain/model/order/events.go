package order

import (
	"time"

	"salesdelivery/internal/core/domain/model/kernel"
)

// EventTypeShipmentCarrierChanged is the routing type of ShipmentCarrierChanged.
const EventTypeShipmentCarrierChanged = "order.shipment_carrier_changed"

// DomainEvent is recorded by the aggregate and stored in the outbox when
// the order is persisted.
type DomainEvent interface {
	EventType() string
	AggregateID() kernel.UUID
}

// ShipmentCarrierChanged records an audited change of the shipment carrier
// name. Previous or Current is nil when the value was absent.
type ShipmentCarrierChanged struct {
	OrderID    kernel.UUID
	Previous   *string
	Current    *string
	OccurredAt time.Time
}

func (e ShipmentCarrierChanged) EventType() string {
	return EventTypeShipmentCarrierChanged
}

func (e ShipmentCarrierChanged) AggregateID() kernel.UUID {
	return e.OrderID
}
