package commands

import (
	"context"
	"errors"
	"time"

	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/errs"
)

// SetStockLevelCommandHandler creates or restocks an inventory record.
// The reserved quantity is never written here.
type SetStockLevelCommandHandler struct {
	uowFactory InventoryUoWFactory
	now        func() time.Time
}

func NewSetStockLevelCommandHandler(uowFactory InventoryUoWFactory) SetStockLevelCommandHandler {
	return SetStockLevelCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h *SetStockLevelCommandHandler) Handle(ctx context.Context, cmd SetStockLevelCommand) (*inventory.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	var result *inventory.Record
	uow := h.uowFactory.Create()

	err := withinUnitOfWork(ctx, uow, func() error {
		repo := uow.InventoryRepository()
		now := h.now()

		record, err := repo.GetForUpdate(ctx, cmd.ProductID())
		switch {
		case errors.Is(err, errs.ErrObjectNotFound):
			threshold := inventory.DefaultLowStockThreshold
			if t := cmd.LowStockThreshold(); t != nil {
				threshold = *t
			}
			record, err = inventory.NewRecord(cmd.ProductID(), cmd.TotalQuantity(), threshold, now)
			if err != nil {
				return err
			}
		case err != nil:
			return err
		default:
			threshold := record.LowStockThreshold()
			if t := cmd.LowStockThreshold(); t != nil {
				threshold = *t
			}
			if err = record.SetStock(cmd.TotalQuantity(), threshold, now); err != nil {
				return err
			}
		}

		record.EvaluateLowStock(now)
		if err = repo.Save(ctx, record); err != nil {
			return err
		}

		result = record
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}
