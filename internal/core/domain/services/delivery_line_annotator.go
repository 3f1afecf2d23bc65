package services

import (
	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

// ShipmentContext carries the values the EasyPost rating returned for the
// current call. Blank fields mean "not supplied".
type ShipmentContext struct {
	RateID      string
	ShipmentID  string
	CarrierName string
}

// DeliveryLineRequest is the input of a delivery-line creation.
type DeliveryLineRequest struct {
	Carrier   *carrier.Carrier
	PriceUnit decimal.Decimal
	Shipment  ShipmentContext
}

// DeliveryLineCreator creates the delivery line of an order.
type DeliveryLineCreator interface {
	CreateDeliveryLine(o *order.Order, req DeliveryLineRequest) (*order.Line, error)
}

// BaseDeliveryLineCreator runs the order's standard routine and ignores
// the shipment context.
type BaseDeliveryLineCreator struct{}

func NewBaseDeliveryLineCreator() BaseDeliveryLineCreator {
	return BaseDeliveryLineCreator{}
}

func (BaseDeliveryLineCreator) CreateDeliveryLine(o *order.Order, req DeliveryLineRequest) (*order.Line, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	return o.CreateDeliveryLine(req.Carrier, req.PriceUnit)
}

// ShipmentAnnotator decorates a DeliveryLineCreator. For EasyPost carriers
// it stores the shipment context on the order and appends the carrier name
// to the new line:
//
//	"EasyPost"  ->  "EasyPost - USPS"
//
// Other carriers pass through untouched. Values are overwritten on every
// call.
type ShipmentAnnotator struct {
	base DeliveryLineCreator
}

func NewShipmentAnnotator(base DeliveryLineCreator) ShipmentAnnotator {
	return ShipmentAnnotator{base: base}
}

func (a ShipmentAnnotator) CreateDeliveryLine(o *order.Order, req DeliveryLineRequest) (*order.Line, error) {
	line, err := a.base.CreateDeliveryLine(o, req)
	if err != nil {
		return nil, err
	}

	if !req.Carrier.DeliveryType().IsEasypost() {
		return line, nil
	}

	o.SetShipment(order.NewShipment(req.Shipment.RateID, req.Shipment.ShipmentID, req.Shipment.CarrierName))

	if name := o.Shipment().CarrierName(); name != nil {
		if err = line.Rename(line.Name() + " - " + *name); err != nil {
			return nil, err
		}
	}

	return line, nil
}
