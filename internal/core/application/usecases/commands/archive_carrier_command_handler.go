package commands

import (
	"context"
)

type ArchiveCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewArchiveCarrierCommandHandler(uowFactory CarrierUoWFactory) ArchiveCarrierCommandHandler {
	return ArchiveCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle is idempotent: archiving an archived carrier succeeds.
func (h *ArchiveCarrierCommandHandler) Handle(ctx context.Context, cmd ArchiveCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	carrierRepo := uow.CarrierRepository()
	c, err := carrierRepo.Get(ctx, cmd.CarrierID())
	if err != nil {
		return err
	}

	c.Archive()

	if err = carrierRepo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
