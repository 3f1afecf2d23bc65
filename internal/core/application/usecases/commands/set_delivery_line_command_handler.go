package commands

import (
	"context"

	"salesdelivery/internal/core/domain/model/kernel"
	"salesdelivery/internal/core/domain/services"
)

// SetDeliveryLineResult identifies the created delivery line.
type SetDeliveryLineResult struct {
	LineID kernel.UUID
	Name   string
}

// SetDeliveryLineCommandHandler reads the carrier, runs the delivery-line
// creator on the order and stores the order in one transaction.
type SetDeliveryLineCommandHandler struct {
	uowFactory UoWFactory
	creator    services.DeliveryLineCreator
}

// NewSetDeliveryLineCommandHandler wires the creator used for every call.
// Production code passes the shipment annotator around the base creator:
//
//	creator := services.NewShipmentAnnotator(services.NewBaseDeliveryLineCreator())
//	handler := NewSetDeliveryLineCommandHandler(uowFactory, creator)
func NewSetDeliveryLineCommandHandler(
	uowFactory UoWFactory,
	creator services.DeliveryLineCreator,
) SetDeliveryLineCommandHandler {
	return SetDeliveryLineCommandHandler{
		uowFactory: uowFactory,
		creator:    creator,
	}
}

func (h *SetDeliveryLineCommandHandler) Handle(
	ctx context.Context,
	cmd SetDeliveryLineCommand,
) (SetDeliveryLineResult, error) {
	if err := cmd.Validate(); err != nil {
		return SetDeliveryLineResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return SetDeliveryLineResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	c, err := uow.CarrierRepository().Get(ctx, cmd.CarrierID())
	if err != nil {
		return SetDeliveryLineResult{}, err
	}

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return SetDeliveryLineResult{}, err
	}

	line, err := h.creator.CreateDeliveryLine(o, services.DeliveryLineRequest{
		Carrier:   c,
		PriceUnit: cmd.PriceUnit(),
		Shipment:  cmd.Shipment(),
	})
	if err != nil {
		return SetDeliveryLineResult{}, err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return SetDeliveryLineResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return SetDeliveryLineResult{}, err
	}

	return SetDeliveryLineResult{
		LineID: line.ID(),
		Name:   line.Name(),
	}, nil
}
