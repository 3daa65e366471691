// Package commands contains business operations that modify system state.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"ordering/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	StatusHistoryRepoFactory interface {
		StatusHistoryRepository() ports.StatusHistoryRepository
	}

	OrderNumberSequenceFactory interface {
		OrderNumberSequence() ports.OrderNumberSequence
	}

	InventoryRepoFactory interface {
		InventoryRepository() ports.InventoryRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW covers the order lifecycle: the order row, its ledger and
	// the order number counter change in one transaction.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   o, err := uow.OrderRepository().GetForUpdate(ctx, id)
	//   change, err := o.TransitionTo(order.Confirmed, actor, "", now)
	//   err = uow.OrderRepository().UpdateStatus(ctx, o, order.Pending)
	//   err = uow.StatusHistoryRepository().Append(ctx, change)
	//
	//   err = uow.Commit(ctx)
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		StatusHistoryRepoFactory
		OrderNumberSequenceFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// InventoryUoW covers stock mutations. It never touches orders.
	InventoryUoW interface {
		TxManager
		InventoryRepoFactory
	}

	InventoryUoWFactory interface {
		Create() InventoryUoW
	}

	// OutboxUoW is used by the relay that publishes committed events.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)

// withinUnitOfWork begins uow, runs fn and commits. Any error from fn, and
// any panic, leaves the transaction rolled back.
func withinUnitOfWork(ctx context.Context, uow TxManager, fn func() error) error {
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := fn(); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
