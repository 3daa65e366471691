package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetInventoryQueryHandler struct {
	db *gorm.DB
}

func NewGetInventoryQueryHandler(db *gorm.DB) GetInventoryQueryHandler {
	return GetInventoryQueryHandler{db: db}
}

func (h GetInventoryQueryHandler) Handle(ctx context.Context, query GetInventoryQuery) (InventoryView, error) {
	if err := query.Validate(); err != nil {
		return InventoryView{}, err
	}

	var v InventoryView
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			product_id,
			total_quantity,
			reserved_quantity,
			low_stock_threshold,
			low_stock_alerted,
			updated_at
		FROM inventory
		WHERE product_id = ?
	`, query.ProductID()).Row().Scan(
		&v.ProductID,
		&v.TotalQuantity,
		&v.ReservedQuantity,
		&v.LowStockThreshold,
		&v.LowStockAlerted,
		&v.UpdatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return InventoryView{}, errs.NewObjectNotFoundError("product", query.ProductID())
	}
	if err != nil {
		return InventoryView{}, err
	}

	v.Available = v.TotalQuantity - v.ReservedQuantity
	v.UpdatedAt = v.UpdatedAt.UTC()
	return v, nil
}
