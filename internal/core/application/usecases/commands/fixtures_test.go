package commands_test

import (
	"testing"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func money(t *testing.T, s string) kernel.Money {
	t.Helper()
	m, err := kernel.MoneyFromString(s)
	require.NoError(t, err)
	return m
}

func validCreateParams(t *testing.T) commands.CreateOrderParams {
	t.Helper()
	return commands.CreateOrderParams{
		CustomerName:    "Ann Lee",
		CustomerPhone:   "+15550100",
		CustomerEmail:   "ann@example.com",
		DeliveryType:    order.Delivery,
		DeliveryAddress: "1 Main St",
		Items: []commands.CreateOrderItem{
			{ProductID: "burger", ProductName: "Burger", UnitPrice: money(t, "10.00"), Quantity: 2},
			{ProductID: "fries", ProductName: "Fries", UnitPrice: money(t, "3.50"), Quantity: 1},
		},
		Actor: "user-1",
	}
}

// pendingOrder builds an order in PENDING.
func pendingOrder(t *testing.T) *order.Order {
	t.Helper()

	item, err := order.NewItem("burger", "Burger", money(t, "10.00"), 1, "")
	require.NoError(t, err)
	totals, err := order.NewTotals(money(t, "10.00"), kernel.Zero, kernel.Zero, kernel.Zero)
	require.NoError(t, err)
	customer, err := order.NewCustomer("", "Ann", "+1", "")
	require.NoError(t, err)
	fulfilment, err := order.NewFulfilment(order.Pickup, "", "", nil)
	require.NoError(t, err)

	now := time.Now()
	number, err := order.NewNumber(now, 1)
	require.NoError(t, err)

	o, _, err := order.NewOrder(kernel.NewUUID(), order.Details{
		Number:     number,
		Customer:   customer,
		Fulfilment: fulfilment,
		Items:      []order.Item{item},
		Totals:     totals,
	}, "user-1", now)
	require.NoError(t, err)
	return o
}

// orderIn returns a fresh order moved through path.
func orderIn(t *testing.T, path ...order.Status) *order.Order {
	t.Helper()
	o := pendingOrder(t)
	for _, s := range path {
		_, err := o.TransitionTo(s, "staff", "", time.Now())
		require.NoError(t, err)
	}
	return o
}

func line(t *testing.T, productID string, qty int, reservationID string) inventory.Line {
	t.Helper()
	l, err := inventory.NewLine(productID, qty, reservationID)
	require.NoError(t, err)
	return l
}

func record(t *testing.T, productID string, total, reserved, threshold int, alerted bool) *inventory.Record {
	t.Helper()
	r, err := inventory.RestoreRecord(productID, total, reserved, threshold, alerted, time.Now())
	require.NoError(t, err)
	return r
}

// orderUoW wires a MockUoW with the order repositories.
func orderUoW(
	orderRepo *MockOrderRepository,
	historyRepo *MockStatusHistoryRepository,
	seq *MockOrderNumberSequence,
) (*MockOrderUoWFactory, *MockUoW) {
	uow := &MockUoW{}
	uow.On("OrderRepository").Return(orderRepo).Maybe()
	uow.On("StatusHistoryRepository").Return(historyRepo).Maybe()
	uow.On("OrderNumberSequence").Return(seq).Maybe()

	factory := &MockOrderUoWFactory{}
	factory.On("Create").Return(uow)
	return factory, uow
}

func inventoryUoW(repo *MockInventoryRepository) (*MockInventoryUoWFactory, *MockUoW) {
	uow := &MockUoW{}
	uow.On("InventoryRepository").Return(repo).Maybe()

	factory := &MockInventoryUoWFactory{}
	factory.On("Create").Return(uow)
	return factory, uow
}

func outboxUoW(repo *MockOutboxRepository) (*MockOutboxUoWFactory, *MockUoW) {
	uow := &MockUoW{}
	uow.On("OutboxRepository").Return(repo).Maybe()

	factory := &MockOutboxUoWFactory{}
	factory.On("Create").Return(uow)
	return factory, uow
}

// expectCommit sets up a successful Begin, Commit, Rollback sequence.
func expectCommit(uow *MockUoW) {
	ctx := mock.Anything
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}

// expectRollback sets up Begin followed by Rollback without Commit.
func expectRollback(uow *MockUoW) {
	ctx := mock.Anything
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
}
