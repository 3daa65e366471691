package queries

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
)

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersFilter narrows the order list. Zero values mean "any".
// From and To bound created_at inclusively.
type ListOrdersFilter struct {
	Status        order.Status
	PaymentStatus order.PaymentStatus
	DeliveryType  order.DeliveryType
	OrderNumber   string
	CustomerID    string
	From          time.Time
	To            time.Time
	Limit         int
	Offset        int
}

// ListOrdersQuery pages through orders, newest first.
type ListOrdersQuery struct { //nolint:recvcheck //using for validation
	filter ListOrdersFilter

	guard guard.ConstructorGuard
}

// NewListOrdersQuery validates the enum filters and applies the default limit.
func NewListOrdersQuery(filter ListOrdersFilter) (ListOrdersQuery, error) {
	filter.OrderNumber = strings.TrimSpace(filter.OrderNumber)
	filter.CustomerID = strings.TrimSpace(filter.CustomerID)
	if filter.Limit == 0 {
		filter.Limit = DefaultListLimit
	}

	errList := []error{validatePeriod(filter.From, filter.To)}
	if filter.Status != "" {
		errList = append(errList, filter.Status.Validate())
	}
	if filter.PaymentStatus != "" {
		errList = append(errList, filter.PaymentStatus.Validate())
	}
	if filter.DeliveryType != "" {
		errList = append(errList, filter.DeliveryType.Validate())
	}
	if filter.Limit < 1 || filter.Limit > MaxListLimit {
		errList = append(errList, errs.NewValueIsOutOfRangeError("limit", filter.Limit, 1, MaxListLimit))
	}
	if filter.Offset < 0 {
		errList = append(errList, errs.NewValueIsOutOfRangeError("offset", filter.Offset, 0, "unbounded"))
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{filter: filter, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Filter() ListOrdersFilter {
	return q.filter
}

// OrderPage is one page of orders plus the number of matching orders.
type OrderPage struct {
	Orders []OrderView
	Total  int64
	Limit  int
	Offset int
}
