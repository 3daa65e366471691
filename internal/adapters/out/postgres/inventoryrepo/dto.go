// Package inventoryrepo keeps stock levels and reservation records in
// PostgreSQL. Every reserve and release is a single conditional UPDATE.
package inventoryrepo

import (
	"time"

	"ordering/internal/core/domain/model/inventory"
)

const (
	reservationReserved = "RESERVED"
	reservationReleased = "RELEASED"
)

// RecordDTO is the inventory row of one product.
type RecordDTO struct {
	ProductID         string    `gorm:"type:varchar(64);primaryKey"`
	TotalQuantity     int       `gorm:"not null;check:chk_inventory_reserved_range,reserved_quantity >= 0 AND reserved_quantity <= total_quantity"`
	ReservedQuantity  int       `gorm:"not null;default:0"`
	LowStockThreshold int       `gorm:"not null;default:10"`
	LowStockAlerted   bool      `gorm:"not null;default:false"`
	UpdatedAt         time.Time `gorm:"not null"`
}

func (RecordDTO) TableName() string {
	return "inventory"
}

// ReservationDTO remembers how much of a product a reservation id holds.
// The composite key makes resubmitted lines detectable.
type ReservationDTO struct {
	ReservationID string    `gorm:"type:varchar(128);primaryKey"`
	ProductID     string    `gorm:"type:varchar(64);primaryKey"`
	Quantity      int       `gorm:"not null"`
	Remaining     int       `gorm:"not null"`
	Status        string    `gorm:"type:varchar(16);not null;index"`
	CreatedAt     time.Time `gorm:"not null"`
	UpdatedAt     time.Time `gorm:"not null"`
}

func (ReservationDTO) TableName() string {
	return "inventory_reservations"
}

func fromDomain(r *inventory.Record) RecordDTO {
	return RecordDTO{
		ProductID:         r.ProductID(),
		TotalQuantity:     r.TotalQuantity(),
		ReservedQuantity:  r.ReservedQuantity(),
		LowStockThreshold: r.LowStockThreshold(),
		LowStockAlerted:   r.LowStockAlerted(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func toDomain(dto RecordDTO) (*inventory.Record, error) {
	return inventory.RestoreRecord(
		dto.ProductID,
		dto.TotalQuantity,
		dto.ReservedQuantity,
		dto.LowStockThreshold,
		dto.LowStockAlerted,
		dto.UpdatedAt,
	)
}
