package commands

import (
	"context"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
)

// ChangeOrderStatusCommandHandler performs status transitions.
//
// The order row is locked, the transition is checked against the status
// graph, and the new status, its timestamp, exactly one ledger entry and the
// order.status.changed outbox row are committed together. Two concurrent
// requests for the same order are serialized by the row lock; the loser sees
// the winner's status and is judged against it.
type ChangeOrderStatusCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

func NewChangeOrderStatusCommandHandler(uowFactory OrderUoWFactory) ChangeOrderStatusCommandHandler {
	return ChangeOrderStatusCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle returns the order after the transition, or unchanged for an
// idempotent replay.
func (h *ChangeOrderStatusCommandHandler) Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *order.Order
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		orderRepo := uow.OrderRepository()

		o, err := orderRepo.GetForUpdate(ctx, cmd.OrderID())
		if err != nil {
			return err
		}

		current := o.Status()
		if expected := cmd.ExpectedFrom(); expected != nil && *expected != current {
			if current == cmd.Target() {
				result = o
				return nil
			}
			return errs.NewInvalidTransitionError(current, cmd.Target())
		}

		change, err := o.TransitionTo(cmd.Target(), cmd.Actor(), cmd.Reason(), h.now())
		if err != nil {
			return err
		}

		if err = orderRepo.UpdateStatus(ctx, o, current); err != nil {
			return err
		}
		if err = uow.StatusHistoryRepository().Append(ctx, change); err != nil {
			return err
		}

		result = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
