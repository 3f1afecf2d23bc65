package commands

import (
	"context"
)

type LockOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewLockOrderCommandHandler(uowFactory OrderUoWFactory) LockOrderCommandHandler {
	return LockOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *LockOrderCommandHandler) Handle(ctx context.Context, cmd LockOrderCommand) error {
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

	orderRepo := uow.OrderRepository()
	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Lock(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
