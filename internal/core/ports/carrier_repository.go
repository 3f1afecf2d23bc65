package ports

import (
	"context"

	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
)

// CarrierRepository persists delivery methods.
type CarrierRepository interface {
	Add(ctx context.Context, aggregate *carrier.Carrier) error

	Update(ctx context.Context, aggregate *carrier.Carrier) error

	// Get returns errs.ObjectNotFoundError when no carrier has the id.
	Get(ctx context.Context, id kernel.UUID) (*carrier.Carrier, error)
}
