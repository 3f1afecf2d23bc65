package commands

import (
	"errors"
	"strings"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrReferenceIsRequired = errors.New("reference is required")
)

// CreateOrderCommand registers a new draft order.
//
//	cmd, err := NewCreateOrderCommand(kernel.NewUUID(), "S00042")
//	if err != nil {
//	    return err
//	}
//	err = handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	reference string

	guard guard.ConstructorGuard
}

func NewCreateOrderCommand(orderID kernel.UUID, reference string) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setReference(reference),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c CreateOrderCommand) Reference() string {
	return c.reference
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setReference(reference string) error {
	reference = strings.TrimSpace(reference)
	if reference == "" {
		return ErrReferenceIsRequired
	}

	c.reference = reference
	return nil
}
