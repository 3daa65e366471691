package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/services"
	"ordering/internal/core/ports"
	"ordering/internal/pkg/errs"

	"go.uber.org/zap"
)

// DefaultOrderNumberAttempts bounds the retries after an order number collision.
const DefaultOrderNumberAttempts = 3

const (
	completeKeyAttempts = 3
	completeKeyBackoff  = 50 * time.Millisecond
)

// CreateOrderCommandHandler places new orders.
//
// The order row, its items, the first ledger entry and the order.created
// outbox row are written in one transaction. A collision on the order
// number rolls that transaction back and the whole attempt is repeated
// with a fresh number. Inventory is not reserved here.
type CreateOrderCommandHandler struct {
	uowFactory  OrderUoWFactory
	pricing     services.PricingCalculator
	idempotency ports.IdempotencyStore
	maxAttempts int
	logger      *zap.Logger
	now         func() time.Time
}

// NewCreateOrderCommandHandler creates the handler. idempotency may be nil,
// in which case idempotency keys are ignored.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory,
	pricing services.PricingCalculator,
	idempotency ports.IdempotencyStore,
	maxAttempts int,
	logger *zap.Logger,
) CreateOrderCommandHandler {
	if maxAttempts <= 0 {
		maxAttempts = DefaultOrderNumberAttempts
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return CreateOrderCommandHandler{
		uowFactory:  uowFactory,
		pricing:     pricing,
		idempotency: idempotency,
		maxAttempts: maxAttempts,
		logger:      logger.With(zap.String("handler", "create_order")),
		now:         time.Now,
	}
}

// Handle validates, prices and persists the order. With an idempotency key
// a repeated request returns the order created by the first one.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	totals, err := h.pricing.Calculate(cmd.Items(), cmd.Fulfilment().Type(), cmd.Discount())
	if err != nil {
		return nil, err
	}

	key := cmd.IdempotencyKey()
	if key == "" || h.idempotency == nil {
		return h.createWithRetry(ctx, cmd, totals)
	}

	existingID, fresh, err := h.idempotency.Reserve(ctx, key)
	if err != nil {
		return nil, err
	}
	if !fresh {
		h.logger.Info("idempotent replay", zap.String("order_id", existingID.String()))
		return h.uowFactory.Create().OrderRepository().Get(ctx, existingID)
	}

	created, err := h.createWithRetry(ctx, cmd, totals)
	if err != nil {
		if releaseErr := h.idempotency.Release(ctx, key); releaseErr != nil {
			h.logger.Warn("failed to release idempotency key", zap.Error(releaseErr))
		}
		return nil, err
	}

	if err = h.completeKey(ctx, key, created.ID()); err != nil {
		h.logger.Warn("failed to complete idempotency key, claim will expire",
			zap.String("order_id", created.ID().String()), zap.Error(err))
	}
	return created, nil
}

// completeKey binds key to the created order, retrying transient failures.
// The order is committed at this point, so an error is only logged.
func (h *CreateOrderCommandHandler) completeKey(ctx context.Context, key string, orderID kernel.UUID) error {
	var err error
	for attempt := 1; attempt <= completeKeyAttempts; attempt++ {
		if err = h.idempotency.Complete(ctx, key, orderID); err == nil {
			return nil
		}
		if attempt == completeKeyAttempts {
			break
		}

		select {
		case <-ctx.Done():
			return errors.Join(err, ctx.Err())
		case <-time.After(time.Duration(attempt) * completeKeyBackoff):
		}
	}
	return err
}

func (h *CreateOrderCommandHandler) createWithRetry(
	ctx context.Context,
	cmd CreateOrderCommand,
	totals order.Totals,
) (*order.Order, error) {
	for attempt := 1; ; attempt++ {
		created, err := h.create(ctx, cmd, totals)
		if err == nil {
			return created, nil
		}

		if !errors.Is(err, errs.ErrDuplicateKey) || attempt >= h.maxAttempts {
			return nil, err
		}

		h.logger.Warn("order number collision, retrying",
			zap.Int("attempt", attempt), zap.Error(err))
	}
}

func (h *CreateOrderCommandHandler) create(
	ctx context.Context,
	cmd CreateOrderCommand,
	totals order.Totals,
) (*order.Order, error) {
	var created *order.Order
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		now := h.now().UTC()

		seq, err := uow.OrderNumberSequence().Next(ctx, order.Day(now))
		if err != nil {
			return err
		}
		number, err := order.NewNumber(now, seq)
		if err != nil {
			return err
		}

		o, initial, err := order.NewOrder(kernel.NewUUID(), order.Details{
			Number:               number,
			Customer:             cmd.Customer(),
			Fulfilment:           cmd.Fulfilment(),
			Items:                cmd.Items(),
			Totals:               totals,
			Priority:             cmd.Priority(),
			SpecialInstructions:  cmd.SpecialInstructions(),
			EstimatedPrepMinutes: cmd.EstimatedPrepMinutes(),
		}, cmd.Actor(), now)
		if err != nil {
			return err
		}

		if err = uow.OrderRepository().Add(ctx, o); err != nil {
			return err
		}
		if err = uow.StatusHistoryRepository().Append(ctx, initial); err != nil {
			return err
		}

		created = o
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}
