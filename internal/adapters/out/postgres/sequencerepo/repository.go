// Package sequencerepo implements the per-day order number counter.
package sequencerepo

import (
	"context"
	"time"

	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// nextSQL never hands out a value at or below the highest order number
// already stored for the day, so a missing or stale counter row heals itself.
const nextSQL = `INSERT INTO order_number_sequences (day, last_value)
SELECT ?, COALESCE(MAX(CAST(SUBSTRING(order_number FROM ?) AS BIGINT)), 0) + 1
FROM orders
WHERE order_number LIKE ? AND SUBSTRING(order_number FROM ?) ~ '^[0-9]+$'
ON CONFLICT (day) DO UPDATE
SET last_value = GREATEST(order_number_sequences.last_value + 1, EXCLUDED.last_value)
RETURNING last_value`

// SequenceDTO holds the last number handed out for one UTC day.
type SequenceDTO struct {
	Day       time.Time `gorm:"type:date;primaryKey"`
	LastValue int64     `gorm:"not null"`
}

func (SequenceDTO) TableName() string {
	return "order_number_sequences"
}

// GormOrderNumberSequence implements OrderNumberSequence using GORM.
// The upsert takes the row lock of the day, so concurrent callers receive
// distinct values and the counter survives restarts.
type GormOrderNumberSequence struct {
	db *gorm.DB
}

func NewGormOrderNumberSequence(db *gorm.DB) *GormOrderNumberSequence {
	return &GormOrderNumberSequence{db: db}
}

// Next increments and returns the counter of day.
func (s *GormOrderNumberSequence) Next(ctx context.Context, day time.Time) (int64, error) {
	day = order.Day(day)
	prefix := order.NumberPrefix(day)
	suffixFrom := len(prefix) + 1

	var value int64
	err := s.db.WithContext(ctx).
		Raw(nextSQL, day.Format(time.DateOnly), suffixFrom, prefix+"%", suffixFrom).
		Scan(&value).Error
	if err != nil {
		return 0, pgerrs.Translate(err, "order_number_sequences")
	}
	return value, nil
}
