package commands

import (
	"context"

	"salesdelivery/internal/core/domain/model/carrier"
)

type CreateCarrierCommandHandler struct {
	uowFactory CarrierUoWFactory
}

func NewCreateCarrierCommandHandler(uowFactory CarrierUoWFactory) CreateCarrierCommandHandler {
	return CreateCarrierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores an active carrier. Service names are validated by the
// carrier aggregate.
func (h *CreateCarrierCommandHandler) Handle(ctx context.Context, cmd CreateCarrierCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	c, err := carrier.NewCarrier(cmd.CarrierID(), cmd.Name(), cmd.DeliveryType(), cmd.Services())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.CarrierRepository().Add(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
