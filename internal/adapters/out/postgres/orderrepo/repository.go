package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/core/domain/model/events"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "orders"

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker collects aggregates whose events must reach the outbox.
type aggregateTracker interface {
	TrackAggregate(aggregate events.Source)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the order together with its items.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, resource)
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Get retrieves an order by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves an order by ID and locks its row.
func (r *GormOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

func (r *GormOrderRepository) load(db *gorm.DB, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := db.
		Preload("Items", func(tx *gorm.DB) *gorm.DB { return tx.Order("position ASC") }).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, pgerrs.Translate(err, resource)
	}

	return toDomain(dto)
}

// UpdateStatus is a compare-and-set on the stored status.
func (r *GormOrderRepository) UpdateStatus(ctx context.Context, aggregate *order.Order, expected order.Status) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND status = ?", dto.ID, expected.String()).
		Updates(statusColumns(dto))
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource)
	}

	if result.RowsAffected == 0 {
		return errs.NewInvalidTransitionError(expected, aggregate.Status())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// UpdateDetails writes the editable attributes of an existing order.
func (r *GormOrderRepository) UpdateDetails(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(detailColumns(dto))
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate)
	return nil
}

// Delete removes the order row. Items and history follow through ON DELETE CASCADE.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&OrderDTO{}, "id = ?", id.Bytes())
	if result.Error != nil {
		return pgerrs.Translate(result.Error, resource)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.String())
	}
	return nil
}

// ListIDsInStatusOlderThan returns ids of matching orders, oldest first.
func (r *GormOrderRepository) ListIDsInStatusOlderThan(
	ctx context.Context,
	status order.Status,
	payment order.PaymentStatus,
	before time.Time,
	limit int,
) ([]kernel.UUID, error) {
	var raw []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status = ? AND payment_status = ? AND created_at < ?", status.String(), payment.String(), before.UTC()).
		Order("created_at ASC").
		Limit(limit).
		Pluck("id", &raw).Error
	if err != nil {
		return nil, pgerrs.Translate(err, resource)
	}

	ids := make([]kernel.UUID, 0, len(raw))
	for _, id := range raw {
		kid, err := kernel.UUIDFromBytes(id[:])
		if err != nil {
			return nil, err
		}
		ids = append(ids, kid)
	}
	return ids, nil
}
