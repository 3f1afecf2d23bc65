package order

import (
	"errors"
	"strings"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// MaxLineQuantity bounds the quantity of a single line.
const MaxLineQuantity = 100_000

var ErrLineIsNotConstructed = errors.New("Line must be created via Order.AddLine or RestoreLine")

// Line is one priced line item of an order. A delivery line carries the
// shipping cost and is named after the carrier.
type Line struct {
	id          kernel.UUID
	name        string
	productName string
	quantity    int
	priceUnit   decimal.Decimal
	isDelivery  bool

	isConstructed bool
}

// RestoreLine rebuilds a line from persistence.
func RestoreLine(
	id kernel.UUID,
	name string,
	productName string,
	quantity int,
	priceUnit decimal.Decimal,
	isDelivery bool,
) (*Line, error) {
	l := &Line{isDelivery: isDelivery, isConstructed: true}

	if err := errors.Join(
		l.setID(id),
		l.setName(name),
		l.setProductName(productName),
		l.setQuantity(quantity),
		l.setPriceUnit(priceUnit),
	); err != nil {
		return nil, err
	}

	return l, nil
}

func (l *Line) Validate() error {
	if l == nil || !l.isConstructed {
		return ErrLineIsNotConstructed
	}
	return nil
}

func (l *Line) ID() kernel.UUID {
	return l.id
}

// Name is the display text of the line.
func (l *Line) Name() string {
	return l.name
}

func (l *Line) ProductName() string {
	return l.productName
}

func (l *Line) Quantity() int {
	return l.quantity
}

func (l *Line) PriceUnit() decimal.Decimal {
	return l.priceUnit
}

func (l *Line) IsDelivery() bool {
	return l.isDelivery
}

// Subtotal is quantity times unit price.
func (l *Line) Subtotal() decimal.Decimal {
	return l.priceUnit.Mul(decimal.NewFromInt(int64(l.quantity)))
}

// Rename replaces the display text.
func (l *Line) Rename(name string) error {
	return l.setName(name)
}

func (l *Line) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	l.id = id
	return nil
}

func (l *Line) setName(name string) error {
	if strings.TrimSpace(name) == "" {
		return errs.NewValueIsRequiredError("line name")
	}
	l.name = name
	return nil
}

func (l *Line) setProductName(productName string) error {
	if strings.TrimSpace(productName) == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	l.productName = productName
	return nil
}

func (l *Line) setQuantity(quantity int) error {
	if quantity < 1 || quantity > MaxLineQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, MaxLineQuantity)
	}
	l.quantity = quantity
	return nil
}

func (l *Line) setPriceUnit(priceUnit decimal.Decimal) error {
	p, err := kernel.NewPrice("price unit", priceUnit)
	if err != nil {
		return err
	}
	l.priceUnit = p
	return nil
}
