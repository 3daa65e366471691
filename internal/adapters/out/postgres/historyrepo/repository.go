package historyrepo

import (
	"context"

	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormStatusHistoryRepository implements StatusHistoryRepository using GORM.
// It only ever inserts and selects.
type GormStatusHistoryRepository struct {
	db *gorm.DB
}

func NewGormStatusHistoryRepository(db *gorm.DB) *GormStatusHistoryRepository {
	return &GormStatusHistoryRepository{db: db}
}

// Append inserts one ledger entry.
func (r *GormStatusHistoryRepository) Append(ctx context.Context, change order.StatusChange) error {
	dto := fromDomain(change)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err, "order_status_history")
	}
	return nil
}

// ListByOrder returns the entries of one order, oldest first.
func (r *GormStatusHistoryRepository) ListByOrder(ctx context.Context, orderID kernel.UUID) ([]order.StatusChange, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}

	var dtos []StatusChangeDTO
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Bytes()).
		Order("created_at ASC, seq ASC").
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err, "order_status_history")
	}

	changes := make([]order.StatusChange, 0, len(dtos))
	for _, dto := range dtos {
		change, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		changes = append(changes, change)
	}
	return changes, nil
}
