package queries

import (
	"context"

	"gorm.io/gorm"
)

// ListOrdersQueryHandler reads order pages without items.
type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) (OrderPage, error) {
	if err := query.Validate(); err != nil {
		return OrderPage{}, err
	}

	f := query.Filter()
	scope := func(db *gorm.DB) *gorm.DB {
		db = db.Table("orders")
		if f.Status != "" {
			db = db.Where("status = ?", f.Status.String())
		}
		if f.PaymentStatus != "" {
			db = db.Where("payment_status = ?", f.PaymentStatus.String())
		}
		if f.DeliveryType != "" {
			db = db.Where("delivery_type = ?", f.DeliveryType.String())
		}
		if f.OrderNumber != "" {
			db = db.Where("order_number = ?", f.OrderNumber)
		}
		return ownedWithin(f.CustomerID, f.From, f.To)(db)
	}

	db := h.db.WithContext(ctx)
	page := OrderPage{Orders: make([]OrderView, 0), Limit: f.Limit, Offset: f.Offset}

	if err := db.Scopes(scope).Count(&page.Total).Error; err != nil {
		return OrderPage{}, err
	}
	if page.Total == 0 {
		return page, nil
	}

	rows, err := db.Scopes(scope).
		Select(orderColumns).
		Order("created_at DESC, id").
		Limit(f.Limit).
		Offset(f.Offset).
		Rows()
	if err != nil {
		return OrderPage{}, err
	}
	defer rows.Close()

	for rows.Next() {
		view, scanErr := scanOrder(rows)
		if scanErr != nil {
			return OrderPage{}, scanErr
		}
		page.Orders = append(page.Orders, view)
	}

	if err = rows.Err(); err != nil {
		return OrderPage{}, err
	}

	return page, nil
}
