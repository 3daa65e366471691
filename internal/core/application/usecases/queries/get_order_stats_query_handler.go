package queries

import (
	"context"
	"database/sql"

	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

const orderTotalsSelect = `
	COUNT(*),
	COALESCE(SUM(total_amount) FILTER (WHERE status = ?), 0),
	COALESCE(AVG(total_amount) FILTER (WHERE status = ?), 0),
	COALESCE(AVG(estimated_prep_time), 0)`

// GetOrderStatsQueryHandler reads both aggregates from one snapshot.
type GetOrderStatsQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderStatsQueryHandler(db *gorm.DB) GetOrderStatsQueryHandler {
	return GetOrderStatsQueryHandler{db: db}
}

func (h GetOrderStatsQueryHandler) Handle(ctx context.Context, query GetOrderStatsQuery) (OrderStats, error) {
	if err := query.Validate(); err != nil {
		return OrderStats{}, err
	}

	f := query.Filter()
	scope := ownedWithin(f.CustomerID, f.From, f.To)

	stats := OrderStats{ByStatus: make(map[order.Status]int64, len(order.AllStatuses()))}
	for _, status := range order.AllStatuses() {
		stats.ByStatus[status] = 0
	}

	err := h.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		delivered := order.Delivered.String()
		err := tx.Table("orders").Scopes(scope).
			Select(orderTotalsSelect, delivered, delivered).
			Row().
			Scan(&stats.TotalOrders, &stats.TotalRevenue, &stats.AverageOrderValue, &stats.AveragePrepMinutes)
		if err != nil {
			return err
		}

		rows, err := tx.Table("orders").Scopes(scope).
			Select("status, COUNT(*)").
			Group("status").
			Rows()
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var (
				status string
				count  int64
			)
			if err = rows.Scan(&status, &count); err != nil {
				return err
			}
			stats.ByStatus[order.Status(status)] = count
		}
		return rows.Err()
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return OrderStats{}, err
	}

	stats.TotalRevenue = stats.TotalRevenue.Round(2)
	stats.AverageOrderValue = stats.AverageOrderValue.Round(2)
	stats.AveragePrepMinutes = stats.AveragePrepMinutes.Round(2)
	return stats, nil
}
