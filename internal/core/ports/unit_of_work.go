package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is a business transaction boundary. Repositories obtained from
// it after Begin run inside the transaction. Commit moves the domain events of
// every aggregate touched by a repository into the outbox before committing.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	StatusHistoryRepository() StatusHistoryRepository
	OrderNumberSequence() OrderNumberSequence
	InventoryRepository() InventoryRepository
	OutboxRepository() OutboxRepository
}
