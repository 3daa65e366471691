// Package queries contains read operations for retrieving system state.
// Queries read straight from the database and return read models shaped for
// the HTTP layer; they never go through the aggregates.
package queries

import (
	"errors"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery loads one order with its items.
//
// Example:
//
//	query, err := NewGetOrderQuery(id)
//	view, err := handler.Handle(ctx, query)
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}
	return GetOrderQuery{orderID: orderID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// OrderView is the read model of an order. Items are nil in list results.
type OrderView struct {
	ID            kernel.UUID
	OrderNumber   string
	Status        order.Status
	PaymentStatus order.PaymentStatus
	Priority      order.Priority
	DeliveryType  order.DeliveryType

	CustomerID    string
	CustomerName  string
	CustomerPhone string
	CustomerEmail string

	DeliveryAddress       string
	DeliveryNotes         string
	RequestedDeliveryTime *time.Time

	Subtotal       decimal.Decimal
	TaxAmount      decimal.Decimal
	DeliveryFee    decimal.Decimal
	DiscountAmount decimal.Decimal
	TotalAmount    decimal.Decimal

	SpecialInstructions string
	EstimatedPrepTime   int

	CreatedAt   time.Time
	UpdatedAt   time.Time
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	DeliveredAt *time.Time

	Items []OrderItemView
}

type OrderItemView struct {
	ID              kernel.UUID
	ProductID       string
	ProductName     string
	UnitPrice       decimal.Decimal
	Quantity        int
	TotalPrice      decimal.Decimal
	SpecialRequests string
}
