package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"
)

var ErrGetOrderStatusHistoryQueryIsNotConstructed = errors.New(
	"GetOrderStatusHistoryQuery must be created via NewGetOrderStatusHistoryQuery constructor",
)

// GetOrderStatusHistoryQuery reads the ledger of one order.
type GetOrderStatusHistoryQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderStatusHistoryQuery(orderID kernel.UUID) (GetOrderStatusHistoryQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderStatusHistoryQuery{}, err
	}
	return GetOrderStatusHistoryQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderStatusHistoryQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderStatusHistoryQueryIsNotConstructed)
}

func (q GetOrderStatusHistoryQuery) OrderID() kernel.UUID {
	return q.orderID
}

type StatusHistoryEntryView struct {
	ID             kernel.UUID
	PreviousStatus *order.Status
	NewStatus      order.Status
	ChangedBy      string
	Reason         string
	CreatedAt      time.Time
}

// StatusHistoryView carries the ledger, oldest first, with the status it
// replays to next to the stored one. Consistent is false when they differ.
type StatusHistoryView struct {
	OrderID        kernel.UUID
	CurrentStatus  order.Status
	ReplayedStatus order.Status
	Consistent     bool
	Entries        []StatusHistoryEntryView
}
