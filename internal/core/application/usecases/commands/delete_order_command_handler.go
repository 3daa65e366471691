package commands

import (
	"context"
)

// DeleteOrderCommandHandler removes an order with its items and history in
// one transaction. Orders past PENDING that were not cancelled are kept.
type DeleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory OrderUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	return withinUnitOfWork(ctx, uow, func() error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.EnsureDeletable(); err != nil {
			return err
		}

		return orderRepo.Delete(ctx, o.ID())
	})
}
