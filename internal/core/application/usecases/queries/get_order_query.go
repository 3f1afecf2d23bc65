package queries

import (
	"errors"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery reads one order with its lines and shipment metadata.
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse is the order read model. The three EasyPost fields
// are nil unless an EasyPost delivery line set them.
type GetOrderQueryResponse struct {
	ID                  kernel.UUID
	Reference           string
	Status              string
	CarrierID           *kernel.UUID
	EasypostRateID      *string
	EasypostShipmentID  *string
	EasypostCarrierName *string
	AmountTotal         decimal.Decimal
	Lines               []GetOrderLineResponse
}

type GetOrderLineResponse struct {
	ID          kernel.UUID
	Name        string
	ProductName string
	Quantity    int
	PriceUnit   decimal.Decimal
	Subtotal    decimal.Decimal
	IsDelivery  bool
}
