package commands

import (
	"context"
	"time"
)

// LineOutcome reports what happened to one line of a batch.
type LineOutcome struct {
	ProductID     string
	ReservationID string
	Quantity      int
	Available     int
	// Replayed is true when the line had already been applied earlier.
	Replayed bool
}

// ReserveInventoryCommandHandler reserves stock for a batch of lines.
//
// Lines are processed in product order. Each one is a single conditional
// update that fails instead of overselling; the first failing line aborts
// the transaction, so either all lines are reserved or none.
// Low stock is evaluated on every touched record before commit.
type ReserveInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
	now        func() time.Time
}

func NewReserveInventoryCommandHandler(uowFactory InventoryUoWFactory) ReserveInventoryCommandHandler {
	return ReserveInventoryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *ReserveInventoryCommandHandler) Handle(ctx context.Context, cmd ReserveInventoryCommand) ([]LineOutcome, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	lines := cmd.Batch().Lines()
	outcomes := make([]LineOutcome, 0, len(lines))
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		repo := uow.InventoryRepository()
		now := h.now()

		for _, line := range lines {
			record, applied, err := repo.Reserve(ctx, line)
			if err != nil {
				return err
			}

			outcome := LineOutcome{
				ProductID:     line.ProductID(),
				ReservationID: line.ReservationID(),
				Quantity:      line.Quantity(),
				Available:     record.Available(),
				Replayed:      !applied,
			}
			outcomes = append(outcomes, outcome)
			if !applied {
				continue
			}

			record.ConfirmReservation(line, now)
			if record.EvaluateLowStock(now) {
				if err = repo.Save(ctx, record); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return outcomes, nil
}
