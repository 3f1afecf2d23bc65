package commands

import (
	"errors"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/services"
	"salesdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrSetDeliveryLineCommandIsNotConstructed = errors.New(
	"SetDeliveryLineCommand must be created via NewSetDeliveryLineCommand constructor",
)

// SetDeliveryLineCommand (re)creates the delivery line of an order for a
// carrier. Shipment holds the rate id, shipment id and carrier name
// returned by the EasyPost rating call; any of them may be blank.
type SetDeliveryLineCommand struct { //nolint:recvcheck //using for validation
	orderID   kernel.UUID
	carrierID kernel.UUID
	priceUnit decimal.Decimal
	shipment  services.ShipmentContext

	guard guard.ConstructorGuard
}

func NewSetDeliveryLineCommand(
	orderID kernel.UUID,
	carrierID kernel.UUID,
	priceUnit decimal.Decimal,
	shipment services.ShipmentContext,
) (SetDeliveryLineCommand, error) {
	cmd := SetDeliveryLineCommand{
		shipment: shipment,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setCarrierID(carrierID),
		cmd.setPriceUnit(priceUnit),
	); err != nil {
		return SetDeliveryLineCommand{}, err
	}

	return cmd, nil
}

func (c SetDeliveryLineCommand) Validate() error {
	return c.guard.Validate(ErrSetDeliveryLineCommandIsNotConstructed)
}

func (c SetDeliveryLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c SetDeliveryLineCommand) CarrierID() kernel.UUID {
	return c.carrierID
}

func (c SetDeliveryLineCommand) PriceUnit() decimal.Decimal {
	return c.priceUnit
}

func (c SetDeliveryLineCommand) Shipment() services.ShipmentContext {
	return c.shipment
}

func (c *SetDeliveryLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *SetDeliveryLineCommand) setCarrierID(carrierID kernel.UUID) error {
	if err := carrierID.Validate(); err != nil {
		return err
	}

	c.carrierID = carrierID
	return nil
}

func (c *SetDeliveryLineCommand) setPriceUnit(priceUnit decimal.Decimal) error {
	if priceUnit.IsNegative() {
		return ErrPriceUnitIsNegative
	}

	c.priceUnit = priceUnit
	return nil
}
