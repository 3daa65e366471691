package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
)

// UpdateOrderDetailsCommandHandler applies a typed patch under the order row lock.
type UpdateOrderDetailsCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewUpdateOrderDetailsCommandHandler(uowFactory OrderUoWFactory) UpdateOrderDetailsCommandHandler {
	return UpdateOrderDetailsCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *UpdateOrderDetailsCommandHandler) Handle(ctx context.Context, cmd UpdateOrderDetailsCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var updated *order.Order
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		if err = o.ApplyPatch(cmd.Patch(), h.now()); err != nil {
			return err
		}

		if err = orderRepo.UpdateDetails(ctx, o); err != nil {
			return err
		}

		updated = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return updated, nil
}
