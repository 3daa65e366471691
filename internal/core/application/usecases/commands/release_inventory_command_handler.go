package commands

import (
	"context"
	"time"
)

// ReleaseInventoryCommandHandler gives reserved stock back.
//
// Each line releases at most what its reservation still holds, so the
// reserved quantity never goes negative. Lines of an already released
// reservation are reported as replayed and change nothing.
type ReleaseInventoryCommandHandler struct {
	uowFactory InventoryUoWFactory
	now        func() time.Time
}

func NewReleaseInventoryCommandHandler(uowFactory InventoryUoWFactory) ReleaseInventoryCommandHandler {
	return ReleaseInventoryCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *ReleaseInventoryCommandHandler) Handle(ctx context.Context, cmd ReleaseInventoryCommand) ([]LineOutcome, error) {
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
			record, released, err := repo.Release(ctx, line)
			if err != nil {
				return err
			}

			outcomes = append(outcomes, LineOutcome{
				ProductID:     line.ProductID(),
				ReservationID: line.ReservationID(),
				Quantity:      released,
				Available:     record.Available(),
				Replayed:      released == 0,
			})
			if released == 0 {
				continue
			}

			record.ConfirmRelease(line.ReservationID(), released, now)
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
