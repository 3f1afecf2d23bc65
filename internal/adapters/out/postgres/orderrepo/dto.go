// Package orderrepo maps order aggregates to the orders and order_lines
// tables.
package orderrepo

import (
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is a row of orders. The easypost_oca_* columns hold the shipment
// metadata and are NULL when absent.
type OrderDTO struct {
	ID                     uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Reference              string         `gorm:"size:64;not null;uniqueIndex"`
	Status                 int            `gorm:"not null"`
	CarrierID              *uuid.UUID     `gorm:"type:uuid;index"`
	EasypostOcaRateID      *string        `gorm:"column:easypost_oca_rate_id;size:128"`
	EasypostOcaShipmentID  *string        `gorm:"column:easypost_oca_shipment_id;size:128"`
	EasypostOcaCarrierName *string        `gorm:"column:easypost_oca_carrier_name;size:128"`
	Lines                  []OrderLineDTO `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderLineDTO is a row of order_lines. Sequence keeps the creation order.
type OrderLineDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sequence    int             `gorm:"not null"`
	Name        string          `gorm:"not null"`
	ProductName string          `gorm:"not null"`
	Quantity    int             `gorm:"not null"`
	PriceUnit   decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	IsDelivery  bool            `gorm:"not null;default:false"`
}

func (OrderLineDTO) TableName() string {
	return "order_lines"
}

func fromDomain(o *order.Order) OrderDTO {
	var carrierID *uuid.UUID
	if id := o.CarrierID(); id != nil {
		raw := id.Bytes()
		carrierID = &raw
	}

	lines := o.Lines()
	lineDTOs := make([]OrderLineDTO, len(lines))
	for i, l := range lines {
		lineDTOs[i] = OrderLineDTO{
			ID:          l.ID().Bytes(),
			OrderID:     o.ID().Bytes(),
			Sequence:    i + 1,
			Name:        l.Name(),
			ProductName: l.ProductName(),
			Quantity:    l.Quantity(),
			PriceUnit:   l.PriceUnit(),
			IsDelivery:  l.IsDelivery(),
		}
	}

	shipment := o.Shipment()
	return OrderDTO{
		ID:                     o.ID().Bytes(),
		Reference:              o.Reference(),
		Status:                 int(o.Status()),
		CarrierID:              carrierID,
		EasypostOcaRateID:      shipment.RateID(),
		EasypostOcaShipmentID:  shipment.ShipmentID(),
		EasypostOcaCarrierName: shipment.CarrierName(),
		Lines:                  lineDTOs,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var carrierID *kernel.UUID
	if dto.CarrierID != nil {
		cID, carrierErr := kernel.UUIDFromBytes((*dto.CarrierID)[:])
		if carrierErr != nil {
			return nil, carrierErr
		}
		carrierID = &cID
	}

	lines := make([]*order.Line, 0, len(dto.Lines))
	for _, l := range dto.Lines {
		lineID, lineErr := kernel.UUIDFromBytes(l.ID[:])
		if lineErr != nil {
			return nil, lineErr
		}

		line, lineErr := order.RestoreLine(lineID, l.Name, l.ProductName, l.Quantity, l.PriceUnit, l.IsDelivery)
		if lineErr != nil {
			return nil, lineErr
		}
		lines = append(lines, line)
	}

	shipment := order.RestoreShipment(dto.EasypostOcaRateID, dto.EasypostOcaShipmentID, dto.EasypostOcaCarrierName)

	return order.RestoreOrder(id, dto.Reference, order.Status(dto.Status), carrierID, lines, shipment)
}
