package queries

import (
	"context"
	"database/sql"
	"errors"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrderQueryHandler reads an order and its items in two statements.
type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns ObjectNotFoundError when the order does not exist.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderView, error) {
	if err := query.Validate(); err != nil {
		return OrderView{}, err
	}

	db := h.db.WithContext(ctx)
	row := db.Raw(`SELECT `+orderColumns+` FROM orders WHERE id = ?`, query.OrderID().Bytes()).Row()

	view, err := scanOrder(row)
	if errors.Is(err, sql.ErrNoRows) {
		return OrderView{}, errs.NewObjectNotFoundError("order", query.OrderID())
	}
	if err != nil {
		return OrderView{}, err
	}

	rows, err := db.Raw(`
		SELECT
			id,
			product_id,
			product_name,
			unit_price,
			quantity,
			total_price,
			special_requests
		FROM order_items
		WHERE order_id = ?
		ORDER BY position
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return OrderView{}, err
	}
	defer rows.Close()

	view.Items = make([]OrderItemView, 0)
	for rows.Next() {
		var item OrderItemView
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&item.ProductID,
			&item.ProductName,
			&item.UnitPrice,
			&item.Quantity,
			&item.TotalPrice,
			&item.SpecialRequests,
		)
		if err != nil {
			return OrderView{}, err
		}

		item.ID, err = kernel.UUIDFromBytes(id[:])
		if err != nil {
			return OrderView{}, err
		}
		view.Items = append(view.Items, item)
	}

	if err = rows.Err(); err != nil {
		return OrderView{}, err
	}

	return view, nil
}
