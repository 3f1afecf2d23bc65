// Package ports defines the contracts between the domain/application layers
// and the infrastructure adapters.
package ports

import (
	"context"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"
)

// OrderRepository persists order aggregates together with their lines and
// shipment metadata.
type OrderRepository interface {
	// Add stores a new order. Pending domain events go to the outbox.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the current state of an existing order, replacing its
	// lines. Pending domain events go to the outbox.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get returns errs.ObjectNotFoundError when no order has the id.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
