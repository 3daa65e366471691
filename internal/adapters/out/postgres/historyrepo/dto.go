// Package historyrepo persists the append-only order status ledger.
package historyrepo

import (
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// StatusChangeDTO is one ledger row. Seq is a bigserial that breaks ties
// between entries written within the same timestamp.
type StatusChangeDTO struct {
	Seq            int64     `gorm:"primaryKey;autoIncrement"`
	ID             uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	OrderID        uuid.UUID `gorm:"type:uuid;index;not null"`
	PreviousStatus *string   `gorm:"type:varchar(32)"`
	NewStatus      string    `gorm:"type:varchar(32);not null"`
	ChangedBy      string    `gorm:"type:varchar(255);not null"`
	Reason         string    `gorm:"type:text"`
	CreatedAt      time.Time `gorm:"not null;index"`
}

func (StatusChangeDTO) TableName() string {
	return "order_status_history"
}

func fromDomain(change order.StatusChange) StatusChangeDTO {
	var previous *string
	if p := change.Previous(); p != nil {
		s := p.String()
		previous = &s
	}

	return StatusChangeDTO{
		ID:             change.ID().Bytes(),
		OrderID:        change.OrderID().Bytes(),
		PreviousStatus: previous,
		NewStatus:      change.Next().String(),
		ChangedBy:      change.ChangedBy(),
		Reason:         change.Reason(),
		CreatedAt:      change.CreatedAt(),
	}
}

func toDomain(dto StatusChangeDTO) (order.StatusChange, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return order.StatusChange{}, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return order.StatusChange{}, err
	}

	var previous *order.Status
	if dto.PreviousStatus != nil {
		p := order.Status(*dto.PreviousStatus)
		previous = &p
	}

	return order.RestoreStatusChange(id, orderID, previous, order.Status(dto.NewStatus), dto.ChangedBy, dto.Reason, dto.CreatedAt)
}
