package commands_test

import (
	"context"
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) UpdateStatus(ctx context.Context, o *order.Order, expected order.Status) error {
	return m.Called(ctx, o, expected).Error(0)
}

func (m *MockOrderRepository) UpdateDetails(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func (m *MockOrderRepository) ListIDsInStatusOlderThan(
	ctx context.Context,
	status order.Status,
	payment order.PaymentStatus,
	before time.Time,
	limit int,
) ([]kernel.UUID, error) {
	args := m.Called(ctx, status, payment, before, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]kernel.UUID), args.Error(1)
}

type MockStatusHistoryRepository struct{ mock.Mock }

func (m *MockStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	return m.Called(ctx, change).Error(0)
}

func (m *MockStatusHistoryRepository) ListByOrder(ctx context.Context, id kernel.UUID) ([]order.StatusChange, error) {
	args := m.Called(ctx, id)
	return args.Get(0).([]order.StatusChange), args.Error(1)
}

type MockOrderNumberSequence struct{ mock.Mock }

func (m *MockOrderNumberSequence) Next(ctx context.Context, day time.Time) (int64, error) {
	args := m.Called(ctx, day)
	return args.Get(0).(int64), args.Error(1)
}

type MockInventoryRepository struct{ mock.Mock }

func (m *MockInventoryRepository) Reserve(ctx context.Context, line inventory.Line) (*inventory.Record, bool, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*inventory.Record), args.Bool(1), args.Error(2)
}

func (m *MockInventoryRepository) Release(ctx context.Context, line inventory.Line) (*inventory.Record, int, error) {
	args := m.Called(ctx, line)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).(*inventory.Record), args.Int(1), args.Error(2)
}

func (m *MockInventoryRepository) Get(ctx context.Context, productID string) (*inventory.Record, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) GetForUpdate(ctx context.Context, productID string) (*inventory.Record, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*inventory.Record), args.Error(1)
}

func (m *MockInventoryRepository) Save(ctx context.Context, record *inventory.Record) error {
	return m.Called(ctx, record).Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	return m.Called(ctx, messages).Error(0)
}

func (m *MockOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]ports.OutboxMessage), args.Error(1)
}

func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	return m.Called(ctx, ids, at).Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	return m.Called(ctx, msg).Error(0)
}

type MockIdempotencyStore struct{ mock.Mock }

func (m *MockIdempotencyStore) Reserve(ctx context.Context, key string) (kernel.UUID, bool, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(kernel.UUID), args.Bool(1), args.Error(2)
}

func (m *MockIdempotencyStore) Complete(ctx context.Context, key string, id kernel.UUID) error {
	return m.Called(ctx, key, id).Error(0)
}

func (m *MockIdempotencyStore) Release(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error    { return m.Called(ctx).Error(0) }
func (m *MockUoW) Commit(ctx context.Context) error   { return m.Called(ctx).Error(0) }
func (m *MockUoW) Rollback(ctx context.Context) error { return m.Called(ctx).Error(0) }

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	return m.Called().Get(0).(ports.OrderRepository)
}

func (m *MockUoW) StatusHistoryRepository() ports.StatusHistoryRepository {
	return m.Called().Get(0).(ports.StatusHistoryRepository)
}

func (m *MockUoW) OrderNumberSequence() ports.OrderNumberSequence {
	return m.Called().Get(0).(ports.OrderNumberSequence)
}

func (m *MockUoW) InventoryRepository() ports.InventoryRepository {
	return m.Called().Get(0).(ports.InventoryRepository)
}

func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	return m.Called().Get(0).(ports.OutboxRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	return m.Called().Get(0).(commands.OrderUoW)
}

type MockInventoryUoWFactory struct{ mock.Mock }

func (m *MockInventoryUoWFactory) Create() commands.InventoryUoW {
	return m.Called().Get(0).(commands.InventoryUoW)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	return m.Called().Get(0).(commands.OutboxUoW)
}
