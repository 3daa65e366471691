// Package outboxrepo stores domain events next to the state change that
// produced them and hands them to the relay.
package outboxrepo

import (
	"context"
	"time"

	"ordering/internal/adapters/out/postgres/pgerrs"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/ports"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const resource = "outbox_events"

// MessageDTO is one outbox_events row.
type MessageDTO struct {
	ID          uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Name        string     `gorm:"type:varchar(64);not null"`
	AggregateID string     `gorm:"type:varchar(128);not null;index"`
	Payload     []byte     `gorm:"type:jsonb;not null"`
	OccurredAt  time.Time  `gorm:"not null;index"`
	PublishedAt *time.Time `gorm:"index"`
}

func (MessageDTO) TableName() string {
	return "outbox_events"
}

// GormOutboxRepository implements OutboxRepository using GORM.
type GormOutboxRepository struct {
	db *gorm.DB
}

func NewGormOutboxRepository(db *gorm.DB) *GormOutboxRepository {
	return &GormOutboxRepository{db: db}
}

func (r *GormOutboxRepository) Add(ctx context.Context, messages ...ports.OutboxMessage) error {
	if len(messages) == 0 {
		return nil
	}

	dtos := make([]MessageDTO, 0, len(messages))
	for _, m := range messages {
		dtos = append(dtos, MessageDTO{
			ID:          m.ID.Bytes(),
			Name:        m.Name,
			AggregateID: m.AggregateID,
			Payload:     m.Payload,
			OccurredAt:  m.OccurredAt.UTC(),
		})
	}

	if err := r.db.WithContext(ctx).Create(&dtos).Error; err != nil {
		return pgerrs.Translate(err, resource)
	}
	return nil
}

// FetchUnpublished locks the oldest unpublished rows with SKIP LOCKED so
// several relays can run side by side.
func (r *GormOutboxRepository) FetchUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	var dtos []MessageDTO
	err := r.db.WithContext(ctx).
		Clauses(clause.Locking{Strength: "UPDATE", Options: "SKIP LOCKED"}).
		Where("published_at IS NULL").
		Order("occurred_at ASC").
		Limit(limit).
		Find(&dtos).Error
	if err != nil {
		return nil, pgerrs.Translate(err, resource)
	}

	messages := make([]ports.OutboxMessage, 0, len(dtos))
	for _, dto := range dtos {
		id, err := kernel.UUIDFromBytes(dto.ID[:])
		if err != nil {
			return nil, err
		}
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			Name:        dto.Name,
			AggregateID: dto.AggregateID,
			Payload:     dto.Payload,
			OccurredAt:  dto.OccurredAt,
		})
	}
	return messages, nil
}

func (r *GormOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, at time.Time) error {
	if len(ids) == 0 {
		return nil
	}

	raw := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		raw = append(raw, id.Bytes())
	}

	err := r.db.WithContext(ctx).
		Model(&MessageDTO{}).
		Where("id IN ?", raw).
		Update("published_at", at.UTC()).Error
	if err != nil {
		return pgerrs.Translate(err, resource)
	}
	return nil
}
