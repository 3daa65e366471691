package inventoryrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/core/domain/model/events"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "inventory"

const (
	reserveSQL = `UPDATE inventory
SET reserved_quantity = reserved_quantity + ?, updated_at = ?
WHERE product_id = ? AND total_quantity - reserved_quantity >= ?
RETURNING *`

	releaseSQL = `UPDATE inventory
SET reserved_quantity = reserved_quantity - ?, updated_at = ?
WHERE product_id = ? AND reserved_quantity >= ?
RETURNING *`
)

type aggregateTracker interface {
	TrackAggregate(aggregate events.Source)
}

// GormInventoryRepository implements InventoryRepository using GORM.
type GormInventoryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
	now     func() time.Time
}

func NewGormInventoryRepository(db *gorm.DB, tracker aggregateTracker) *GormInventoryRepository {
	return &GormInventoryRepository{
		db:      db,
		tracker: tracker,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// Reserve records the reservation line and then increments the reserved
// quantity in one conditional statement. Both happen in the caller's
// transaction, so a failed line leaves no trace once it rolls back.
func (r *GormInventoryRepository) Reserve(ctx context.Context, line inventory.Line) (*inventory.Record, bool, error) {
	db := r.db.WithContext(ctx)
	now := r.now()

	reservation := ReservationDTO{
		ReservationID: line.ReservationID(),
		ProductID:     line.ProductID(),
		Quantity:      line.Quantity(),
		Remaining:     line.Quantity(),
		Status:        reservationReserved,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	inserted := db.Clauses(clause.OnConflict{DoNothing: true}).Create(&reservation)
	if inserted.Error != nil {
		return nil, false, pgerrs.Translate(inserted.Error, resource)
	}

	if inserted.RowsAffected == 0 {
		if err := r.checkReplay(db, line); err != nil {
			return nil, false, err
		}
		record, err := r.Get(ctx, line.ProductID())
		if err != nil {
			return nil, false, err
		}
		return record, false, nil
	}

	var dto RecordDTO
	updated := db.Raw(reserveSQL, line.Quantity(), now, line.ProductID(), line.Quantity()).Scan(&dto)
	if updated.Error != nil {
		return nil, false, pgerrs.Translate(updated.Error, resource)
	}

	if updated.RowsAffected == 0 {
		current, err := r.Get(ctx, line.ProductID())
		if err != nil {
			return nil, false, err
		}
		return nil, false, errs.NewInsufficientInventoryError(line.ProductID(), line.Quantity(), current.Available())
	}

	record, err := toDomain(dto)
	if err != nil {
		return nil, false, err
	}

	r.tracker.TrackAggregate(record)
	return record, true, nil
}

// checkReplay accepts a resubmitted line only when the stored reservation
// still holds exactly the requested quantity.
func (r *GormInventoryRepository) checkReplay(db *gorm.DB, line inventory.Line) error {
	var stored ReservationDTO
	err := db.Clauses(clause.Locking{Strength: "SHARE"}).
		First(&stored, "reservation_id = ? AND product_id = ?", line.ReservationID(), line.ProductID()).Error
	if err != nil {
		return pgerrs.Translate(err, resource)
	}

	if stored.Status == reservationReleased || stored.Remaining != stored.Quantity {
		return errs.NewOperationNotAllowedError("reserve inventory",
			fmt.Sprintf("reservation %s of %s was already released", line.ReservationID(), line.ProductID()))
	}
	if stored.Quantity != line.Quantity() {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("reservation %s already holds %d of %s, requested %d",
				line.ReservationID(), stored.Quantity, line.ProductID(), line.Quantity()))
	}
	return nil
}

// Release gives back at most the remaining quantity of the reservation.
func (r *GormInventoryRepository) Release(ctx context.Context, line inventory.Line) (*inventory.Record, int, error) {
	db := r.db.WithContext(ctx)
	now := r.now()

	var reservation ReservationDTO
	err := db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&reservation, "reservation_id = ? AND product_id = ?", line.ReservationID(), line.ProductID()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errs.NewObjectNotFoundError("reservation",
				fmt.Sprintf("%s/%s", line.ReservationID(), line.ProductID()))
		}
		return nil, 0, pgerrs.Translate(err, resource)
	}

	if reservation.Status == reservationReleased || reservation.Remaining == 0 {
		record, err := r.Get(ctx, line.ProductID())
		if err != nil {
			return nil, 0, err
		}
		return record, 0, nil
	}

	quantity := min(line.Quantity(), reservation.Remaining)

	var dto RecordDTO
	updated := db.Raw(releaseSQL, quantity, now, line.ProductID(), quantity).Scan(&dto)
	if updated.Error != nil {
		return nil, 0, pgerrs.Translate(updated.Error, resource)
	}

	if updated.RowsAffected == 0 {
		return nil, 0, errs.NewOperationNotAllowedError("release inventory",
			fmt.Sprintf("reserved quantity of %s would drop below zero", line.ProductID()))
	}

	reservation.Remaining -= quantity
	reservation.UpdatedAt = now
	if reservation.Remaining == 0 {
		reservation.Status = reservationReleased
	}
	err = db.Model(&ReservationDTO{}).
		Where("reservation_id = ? AND product_id = ?", reservation.ReservationID, reservation.ProductID).
		Updates(map[string]any{
			"remaining":  reservation.Remaining,
			"status":     reservation.Status,
			"updated_at": reservation.UpdatedAt,
		}).Error
	if err != nil {
		return nil, 0, pgerrs.Translate(err, resource)
	}

	record, err := toDomain(dto)
	if err != nil {
		return nil, 0, err
	}

	r.tracker.TrackAggregate(record)
	return record, quantity, nil
}

// Get retrieves the stock level of a product.
func (r *GormInventoryRepository) Get(ctx context.Context, productID string) (*inventory.Record, error) {
	return r.load(r.db.WithContext(ctx), productID)
}

// GetForUpdate retrieves the stock level of a product and locks its row.
func (r *GormInventoryRepository) GetForUpdate(ctx context.Context, productID string) (*inventory.Record, error) {
	return r.load(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), productID)
}

func (r *GormInventoryRepository) load(db *gorm.DB, productID string) (*inventory.Record, error) {
	var dto RecordDTO
	if err := db.First(&dto, "product_id = ?", productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("product", productID)
		}
		return nil, pgerrs.Translate(err, resource)
	}

	return toDomain(dto)
}

// Save upserts the record. On conflict the reserved quantity is left alone.
func (r *GormInventoryRepository) Save(ctx context.Context, record *inventory.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "product_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"total_quantity", "low_stock_threshold", "low_stock_alerted", "updated_at",
			}),
		}).
		Create(&dto).Error
	if err != nil {
		if pgerrs.IsCode(err, pgerrs.CodeCheckViolation) {
			return errs.NewOperationNotAllowedError("set stock level", "total quantity is below reserved quantity")
		}
		return pgerrs.Translate(err, resource)
	}

	r.tracker.TrackAggregate(record)
	return nil
}
