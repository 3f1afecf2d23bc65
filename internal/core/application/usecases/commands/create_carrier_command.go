package commands

import (
	"errors"
	"strings"

	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"
)

var (
	ErrCreateCarrierCommandIsNotConstructed = errors.New(
		"CreateCarrierCommand must be created via NewCreateCarrierCommand constructor",
	)
	ErrCarrierNameIsRequired = errors.New("carrier name is required")
)

// CreateCarrierCommand registers a delivery method.
//
//	cmd, err := NewCreateCarrierCommand(kernel.NewUUID(), "EasyPost", "easypost_oca", []string{"Priority"})
type CreateCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID    kernel.UUID
	name         string
	deliveryType carrier.DeliveryType
	services     []string

	guard guard.ConstructorGuard
}

func NewCreateCarrierCommand(
	carrierID kernel.UUID,
	name string,
	deliveryType string,
	services []string,
) (CreateCarrierCommand, error) {
	cmd := CreateCarrierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCarrierID(carrierID),
		cmd.setName(name),
		cmd.setDeliveryType(deliveryType),
	); err != nil {
		return CreateCarrierCommand{}, err
	}

	if len(services) > 0 {
		cmd.services = append([]string(nil), services...)
	}

	return cmd, nil
}

func (c CreateCarrierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCarrierCommandIsNotConstructed)
}

func (c CreateCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c CreateCarrierCommand) Name() string {
	return c.name
}

func (c CreateCarrierCommand) DeliveryType() carrier.DeliveryType {
	return c.deliveryType
}

func (c CreateCarrierCommand) Services() []string {
	return append([]string(nil), c.services...)
}

func (c *CreateCarrierCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *CreateCarrierCommand) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrCarrierNameIsRequired
	}

	c.name = name
	return nil
}

func (c *CreateCarrierCommand) setDeliveryType(deliveryType string) error {
	dt, err := carrier.ParseDeliveryType(deliveryType)
	if err != nil {
		return err
	}

	c.deliveryType = dt
	return nil
}
