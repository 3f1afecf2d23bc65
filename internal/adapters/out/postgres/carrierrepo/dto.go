// Package carrierrepo maps carrier aggregates to the carriers table.
package carrierrepo

import (
	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// CarrierDTO is a row of carriers. Services is a postgres text[].
type CarrierDTO struct {
	ID           uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name         string         `gorm:"size:128;not null"`
	DeliveryType string         `gorm:"size:32;not null;index"`
	Services     pq.StringArray `gorm:"type:text[]"`
	Active       bool           `gorm:"not null;default:true"`
}

func (CarrierDTO) TableName() string {
	return "carriers"
}

func fromDomain(c *carrier.Carrier) CarrierDTO {
	return CarrierDTO{
		ID:           c.ID().Bytes(),
		Name:         c.Name(),
		DeliveryType: c.DeliveryType().String(),
		Services:     pq.StringArray(c.Services()),
		Active:       c.Active(),
	}
}

func toDomain(dto CarrierDTO) (*carrier.Carrier, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	deliveryType, err := carrier.ParseDeliveryType(dto.DeliveryType)
	if err != nil {
		return nil, err
	}

	return carrier.RestoreCarrier(id, dto.Name, deliveryType, dto.Services, dto.Active)
}
