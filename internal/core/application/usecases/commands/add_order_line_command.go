package commands

import (
	"errors"
	"strings"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrAddOrderLineCommandIsNotConstructed = errors.New(
		"AddOrderLineCommand must be created via NewAddOrderLineCommand constructor",
	)
	ErrProductNameIsRequired = errors.New("product name is required")
	ErrQuantityIsInvalid     = errors.New("quantity must be greater than 0")
	ErrPriceUnitIsNegative   = errors.New("price unit must not be negative")
)

// AddOrderLineCommand appends a product line to an order.
type AddOrderLineCommand struct { //nolint:recvcheck //using for validation
	orderID     kernel.UUID
	lineID      kernel.UUID
	productName string
	quantity    int
	priceUnit   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewAddOrderLineCommand assigns a fresh id to the line; read it back with
// LineID.
func NewAddOrderLineCommand(
	orderID kernel.UUID,
	productName string,
	quantity int,
	priceUnit decimal.Decimal,
) (AddOrderLineCommand, error) {
	cmd := AddOrderLineCommand{
		lineID: kernel.NewUUID(),
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setProductName(productName),
		cmd.setQuantity(quantity),
		cmd.setPriceUnit(priceUnit),
	); err != nil {
		return AddOrderLineCommand{}, err
	}

	return cmd, nil
}

func (c AddOrderLineCommand) Validate() error {
	return c.guard.Validate(ErrAddOrderLineCommandIsNotConstructed)
}

func (c AddOrderLineCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c AddOrderLineCommand) LineID() kernel.UUID {
	return c.lineID
}

func (c AddOrderLineCommand) ProductName() string {
	return c.productName
}

func (c AddOrderLineCommand) Quantity() int {
	return c.quantity
}

func (c AddOrderLineCommand) PriceUnit() decimal.Decimal {
	return c.priceUnit
}

func (c *AddOrderLineCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddOrderLineCommand) setProductName(productName string) error {
	productName = strings.TrimSpace(productName)
	if productName == "" {
		return ErrProductNameIsRequired
	}

	c.productName = productName
	return nil
}

func (c *AddOrderLineCommand) setQuantity(quantity int) error {
	if quantity <= 0 {
		return ErrQuantityIsInvalid
	}

	c.quantity = quantity
	return nil
}

func (c *AddOrderLineCommand) setPriceUnit(priceUnit decimal.Decimal) error {
	if priceUnit.IsNegative() {
		return ErrPriceUnitIsNegative
	}

	c.priceUnit = priceUnit
	return nil
}
