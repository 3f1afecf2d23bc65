package commands

import (
	"errors"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/pkg/guard"
)

var ErrArchiveCarrierCommandIsNotConstructed = errors.New(
	"ArchiveCarrierCommand must be created via NewArchiveCarrierCommand constructor",
)

// ArchiveCarrierCommand deactivates a delivery method. Existing orders keep
// their delivery lines; new ones can no longer be created with it.
type ArchiveCarrierCommand struct { //nolint:recvcheck //using for validation
	carrierID kernel.UUID

	guard guard.ConstructorGuard
}

func NewArchiveCarrierCommand(carrierID kernel.UUID) (ArchiveCarrierCommand, error) {
	if err := carrierID.Validate(); err != nil {
		return ArchiveCarrierCommand{}, err
	}

	return ArchiveCarrierCommand{
		carrierID: carrierID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

func (c ArchiveCarrierCommand) Validate() error {
	return c.guard.Validate(ErrArchiveCarrierCommandIsNotConstructed)
}

func (c ArchiveCarrierCommand) CarrierID() kernel.UUID {
	return c.carrierID
}
