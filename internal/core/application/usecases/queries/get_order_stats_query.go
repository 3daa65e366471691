package queries

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderStatsQueryIsNotConstructed = errors.New(
	"GetOrderStatsQuery must be created via NewGetOrderStatsQuery constructor",
)

// OrderStatsFilter scopes the figures to one customer and a created_at
// window. Zero values mean "any".
type OrderStatsFilter struct {
	CustomerID string
	From       time.Time
	To         time.Time
}

// GetOrderStatsQuery aggregates orders for dashboards.
type GetOrderStatsQuery struct {
	filter OrderStatsFilter

	guard guard.ConstructorGuard
}

func NewGetOrderStatsQuery(filter OrderStatsFilter) (GetOrderStatsQuery, error) {
	filter.CustomerID = strings.TrimSpace(filter.CustomerID)
	if err := validatePeriod(filter.From, filter.To); err != nil {
		return GetOrderStatsQuery{}, err
	}
	return GetOrderStatsQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatsQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatsQueryIsNotConstructed)
}

func (q GetOrderStatsQuery) Filter() OrderStatsFilter {
	return q.filter
}

// OrderStats summarises the matching orders. Revenue and average order
// value only count DELIVERED orders; averages are rounded to two places.
type OrderStats struct {
	TotalOrders        int64
	ByStatus           map[order.Status]int64
	TotalRevenue       decimal.Decimal
	AverageOrderValue  decimal.Decimal
	AveragePrepMinutes decimal.Decimal
}
