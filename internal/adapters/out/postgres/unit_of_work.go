// Package postgres provides the GORM-based Unit of Work and schema bootstrap.
//
// A unit of work wraps one database transaction. Repositories handed out
// after Begin run inside it and register every aggregate they write. Commit
// serializes the pending domain events of those aggregates into the outbox
// table and only then commits, so state and events become visible together.
//
// Basic usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, order); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Every transaction runs with SET LOCAL lock_timeout and statement_timeout,
// so a caller never waits on a row lock for longer than configured.
package postgres

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ordering/internal/adapters/out/postgres/historyrepo"
	"ordering/internal/adapters/out/postgres/inventoryrepo"
	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/adapters/out/postgres/outboxrepo"
	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/adapters/out/postgres/sequencerepo"
	"ordering/internal/core/domain/model/events"
	"ordering/internal/core/ports"

	"gorm.io/gorm"
)

// TxOptions bounds the time a transaction may spend waiting. Zero disables a limit.
type TxOptions struct {
	LockTimeout      time.Duration
	StatementTimeout time.Duration
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
// Each business operation gets a fresh unit of work instance.
type GormUnitOfWorkFactory struct {
	db   *gorm.DB
	opts TxOptions
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db, TxOptions{LockTimeout: 3 * time.Second})
func NewGormUnitOfWorkFactory(db *gorm.DB, opts TxOptions) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db, opts: opts}
}

// Create produces a new UnitOfWork instance with its own transaction state
// and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:      f.db,
		opts:    f.opts,
		tracked: make([]events.Source, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates
// changed inside it.
type GormUnitOfWork struct {
	db      *gorm.DB
	tx      *gorm.DB
	opts    TxOptions
	tracked []events.Source
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance are safe and will not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Translate(tx.Error, "transaction")
	}

	for _, stmt := range uow.opts.statements() {
		if err := tx.Exec(stmt).Error; err != nil {
			tx.Rollback()
			return pgerrs.Translate(err, "transaction")
		}
	}

	uow.tx = tx
	return nil
}

// Commit writes the pending domain events of tracked aggregates to the
// outbox and commits. On any failure the transaction is rolled back.
//
// Returns error if no active transaction exists or if the commit operation fails.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.flushEvents(ctx); err != nil {
		_ = uow.Rollback(ctx)
		return err
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return pgerrs.Translate(err, "transaction")
}

// Rollback discards all changes made within the current transaction.
//
// Returns error if no active transaction exists or if the rollback operation fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.tracked = uow.tracked[:0]
	return err
}

func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) StatusHistoryRepository() ports.StatusHistoryRepository {
	return historyrepo.NewGormStatusHistoryRepository(uow.conn())
}

func (uow *GormUnitOfWork) OrderNumberSequence() ports.OrderNumberSequence {
	return sequencerepo.NewGormOrderNumberSequence(uow.conn())
}

func (uow *GormUnitOfWork) InventoryRepository() ports.InventoryRepository {
	return inventoryrepo.NewGormInventoryRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate whose events must be flushed on
// Commit. Registering the same aggregate twice has no effect.
func (uow *GormUnitOfWork) TrackAggregate(aggregate events.Source) {
	for _, t := range uow.tracked {
		if t == aggregate {
			return
		}
	}
	uow.tracked = append(uow.tracked, aggregate)
}

// conn returns the transaction when one is active, otherwise the pool.
func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) flushEvents(ctx context.Context) error {
	var messages []ports.OutboxMessage
	for _, aggregate := range uow.tracked {
		for _, evt := range aggregate.DomainEvents() {
			msg, err := toOutboxMessage(evt)
			if err != nil {
				return err
			}
			messages = append(messages, msg)
		}
	}

	if err := uow.OutboxRepository().Add(ctx, messages...); err != nil {
		return err
	}

	for _, aggregate := range uow.tracked {
		aggregate.ClearDomainEvents()
	}
	return nil
}

func toOutboxMessage(evt events.Event) (ports.OutboxMessage, error) {
	payload, err := json.Marshal(evt)
	if err != nil {
		return ports.OutboxMessage{}, fmt.Errorf("encode %s event: %w", evt.EventName(), err)
	}

	return ports.OutboxMessage{
		ID:          evt.EventID(),
		Name:        evt.EventName(),
		AggregateID: evt.AggregateID(),
		Payload:     payload,
		OccurredAt:  evt.OccurredAt(),
	}, nil
}

func (o TxOptions) statements() []string {
	var stmts []string
	if o.LockTimeout > 0 {
		stmts = append(stmts, fmt.Sprintf("SET LOCAL lock_timeout = '%dms'", o.LockTimeout.Milliseconds()))
	}
	if o.StatementTimeout > 0 {
		stmts = append(stmts, fmt.Sprintf("SET LOCAL statement_timeout = '%dms'", o.StatementTimeout.Milliseconds()))
	}
	return stmts
}
