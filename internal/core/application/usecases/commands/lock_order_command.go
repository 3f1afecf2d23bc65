package commands

import (
	"errors"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"
)

var ErrLockOrderCommandIsNotConstructed = errors.New(
	"LockOrderCommand must be created via NewLockOrderCommand constructor",
)

// LockOrderCommand marks a sales order as done. Locked orders accept no
// further line or delivery changes.
type LockOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewLockOrderCommand(orderID kernel.UUID) (LockOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return LockOrderCommand{}, err
	}

	return LockOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c LockOrderCommand) Validate() error {
	return c.guard.Validate(ErrLockOrderCommandIsNotConstructed)
}

func (c LockOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
