// Package queries contains the read-side use cases. Handlers read straight
// from the database into response models without loading aggregates.
package queries

import (
	"errors"

	"salesdelivery/internal/core/domain/model/carrier"
	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"
)

var ErrGetAllCarriersQueryIsNotConstructed = errors.New(
	"GetAllCarriersQuery must be created via NewGetAllCarriersQuery constructor",
)

// GetAllCarriersQuery lists every delivery method, archived ones included.
type GetAllCarriersQuery struct {
	guard guard.ConstructorGuard
}

func NewGetAllCarriersQuery() GetAllCarriersQuery {
	return GetAllCarriersQuery{guard: guard.NewConstructorGuard()}
}

func (q GetAllCarriersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllCarriersQueryIsNotConstructed)
}

// GetAllCarriersQueryResponse is one carrier. Services is nil when the
// carrier has none configured.
type GetAllCarriersQueryResponse struct {
	ID           kernel.UUID
	Name         string
	DeliveryType carrier.DeliveryType
	Services     []string
	Active       bool
}
