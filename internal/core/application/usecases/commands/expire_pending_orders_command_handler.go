package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"go.uber.org/zap"
)

const expiryReason = "Payment not received in time"

// orderStatusChanger is satisfied by ChangeOrderStatusCommandHandler.
type orderStatusChanger interface {
	Handle(ctx context.Context, cmd ChangeOrderStatusCommand) (*order.Order, error)
}

// ExpirePendingOrdersCommandHandler cancels stale unpaid orders through the
// regular status transition, so each cancellation gets its ledger entry and
// event. Each order is cancelled in its own transaction.
type ExpirePendingOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	changer    orderStatusChanger
	logger     *zap.Logger
	now        func() time.Time
}

func NewExpirePendingOrdersCommandHandler(
	uowFactory OrderUoWFactory,
	changer orderStatusChanger,
	logger *zap.Logger,
) ExpirePendingOrdersCommandHandler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return ExpirePendingOrdersCommandHandler{
		uowFactory: uowFactory,
		changer:    changer,
		logger:     logger.With(zap.String("handler", "expire_pending_orders")),
		now:        time.Now,
	}
}

// Handle returns the number of orders cancelled. An order that left PENDING
// meanwhile is skipped; other failures are joined into the returned error.
func (h *ExpirePendingOrdersCommandHandler) Handle(ctx context.Context, cmd ExpirePendingOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	cutoff := h.now().Add(-cmd.TTL())
	ids, err := h.uowFactory.Create().OrderRepository().
		ListIDsInStatusOlderThan(ctx, order.Pending, order.PaymentPending, cutoff, cmd.BatchSize())
	if err != nil {
		return 0, err
	}

	expected := order.Pending
	expired := 0
	var failures []error
	for _, id := range ids {
		change, err := NewChangeOrderStatusCommand(id, order.Cancelled, ExpiryActor, expiryReason, &expected)
		if err != nil {
			failures = append(failures, err)
			continue
		}

		_, err = h.changer.Handle(ctx, change)
		switch {
		case err == nil:
			expired++
		case errs.KindOf(err) == errs.KindInvalidTransition:
			h.logger.Debug("order left PENDING before expiry", zap.String("order_id", id.String()))
		default:
			h.logger.Warn("failed to expire order", zap.String("order_id", id.String()), zap.Error(err))
			failures = append(failures, err)
		}
	}

	return expired, errors.Join(failures...)
}
