// Package commands contains the write-side use cases. Each command is a
// validated value built by its constructor; each handler runs the command in
// its own unit of work.
package commands

import (
	"context"

	"salesdelivery/internal/core/ports"
)

// Unit of work views used by the handlers. A handler depends only on the
// repositories it touches.
type (
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	CarrierRepoFactory interface {
		CarrierRepository() ports.CarrierRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW is used by commands that change orders only.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CarrierUoW is used by commands that change carriers only.
	CarrierUoW interface {
		TxManager
		CarrierRepoFactory
	}

	CarrierUoWFactory interface {
		Create() CarrierUoW
	}

	// UoW spans orders and carriers, e.g. for delivery-line creation which
	// reads the carrier and writes the order.
	UoW interface {
		TxManager
		OrderRepoFactory
		CarrierRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}

	// OutboxUoW is used by the outbox relay.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
