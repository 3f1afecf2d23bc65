package queries

import (
	"context"

	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

type GetAllCarriersQueryHandler struct {
	db *gorm.DB
}

func NewGetAllCarriersQueryHandler(db *gorm.DB) GetAllCarriersQueryHandler {
	return GetAllCarriersQueryHandler{db: db}
}

// Handle returns carriers sorted by name.
func (h GetAllCarriersQueryHandler) Handle(
	ctx context.Context,
	query GetAllCarriersQuery,
) ([]GetAllCarriersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	carriers := make([]GetAllCarriersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			delivery_type,
			services,
			active
		FROM carriers
		ORDER BY name, id
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var (
			c            GetAllCarriersQueryResponse
			id           uuid.UUID
			deliveryType string
			services     pq.StringArray
		)

		if err = rows.Scan(&id, &c.Name, &deliveryType, &services, &c.Active); err != nil {
			return nil, err
		}

		if c.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if c.DeliveryType, err = carrier.ParseDeliveryType(deliveryType); err != nil {
			return nil, err
		}
		if len(services) > 0 {
			c.Services = []string(services)
		}

		carriers = append(carriers, c)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return carriers, nil
}
