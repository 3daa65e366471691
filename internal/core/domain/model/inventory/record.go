package inventory

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"ordering/internal/core/domain/model/events"
	"ordering/internal/pkg/errs"
)

// DefaultLowStockThreshold applies when a stock level is set without a threshold.
const DefaultLowStockThreshold = 10

// ErrRecordIsNotConstructed is returned for a Record that bypassed its constructors.
var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord or RestoreRecord")

// Record is the stock level of one product.
// Invariant: 0 <= reserved <= total. reserved only moves through storage-level
// conditional updates; the record reflects their outcome.
type Record struct {
	events.Recorder

	productID         string
	totalQuantity     int
	reservedQuantity  int
	lowStockThreshold int
	lowStockAlerted   bool
	updatedAt         time.Time

	isConstructed bool
}

func NewRecord(productID string, totalQuantity, lowStockThreshold int, at time.Time) (*Record, error) {
	return RestoreRecord(productID, totalQuantity, 0, lowStockThreshold, false, at)
}

func RestoreRecord(
	productID string,
	totalQuantity, reservedQuantity, lowStockThreshold int,
	lowStockAlerted bool,
	updatedAt time.Time,
) (*Record, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return nil, errs.NewValueIsRequiredError("product_id")
	}
	if totalQuantity < 0 {
		return nil, errs.NewValueIsOutOfRangeError("total_quantity", totalQuantity, 0, "unbounded")
	}
	if reservedQuantity < 0 || reservedQuantity > totalQuantity {
		return nil, errs.NewValueIsOutOfRangeError("reserved_quantity", reservedQuantity, 0, totalQuantity)
	}
	if lowStockThreshold < 0 {
		return nil, errs.NewValueIsOutOfRangeError("low_stock_threshold", lowStockThreshold, 0, "unbounded")
	}

	return &Record{
		productID:         productID,
		totalQuantity:     totalQuantity,
		reservedQuantity:  reservedQuantity,
		lowStockThreshold: lowStockThreshold,
		lowStockAlerted:   lowStockAlerted,
		updatedAt:         updatedAt.UTC(),
		isConstructed:     true,
	}, nil
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ProductID() string      { return r.productID }
func (r *Record) TotalQuantity() int     { return r.totalQuantity }
func (r *Record) ReservedQuantity() int  { return r.reservedQuantity }
func (r *Record) LowStockThreshold() int { return r.lowStockThreshold }
func (r *Record) LowStockAlerted() bool  { return r.lowStockAlerted }
func (r *Record) UpdatedAt() time.Time   { return r.updatedAt }

// Available is the quantity that can still be reserved.
func (r *Record) Available() int {
	return r.totalQuantity - r.reservedQuantity
}

// IsLow reports whether available stock is at or below the threshold.
func (r *Record) IsLow() bool {
	return r.Available() <= r.lowStockThreshold
}

// ConfirmReservation records inventory.reserved for a line that storage has
// already applied to this record.
func (r *Record) ConfirmReservation(line Line, at time.Time) {
	r.Record(ReservedEvent{
		Base:          events.NewBase(EventReserved, r.productID, at),
		ReservationID: line.ReservationID(),
		ProductID:     r.productID,
		Quantity:      line.Quantity(),
		Available:     r.Available(),
	})
}

// ConfirmRelease records inventory.released for quantity returned to stock.
func (r *Record) ConfirmRelease(reservationID string, quantity int, at time.Time) {
	r.Record(ReleasedEvent{
		Base:          events.NewBase(EventReleased, r.productID, at),
		ReservationID: reservationID,
		ProductID:     r.productID,
		Quantity:      quantity,
		Available:     r.Available(),
	})
}

// EvaluateLowStock updates the alert flag after a mutation and reports
// whether it changed. Crossing to or below the threshold records exactly one
// inventory.low_stock event; rising above it again re-arms the alert.
func (r *Record) EvaluateLowStock(at time.Time) bool {
	switch {
	case r.IsLow() && !r.lowStockAlerted:
		r.lowStockAlerted = true
		alertType := AlertLowStock
		if r.Available() == 0 {
			alertType = AlertOutOfStock
		}
		r.Record(LowStockEvent{
			Base:      events.NewBase(EventLowStock, r.productID, at),
			ProductID: r.productID,
			Current:   r.Available(),
			Threshold: r.lowStockThreshold,
			AlertType: alertType,
		})
		return true
	case !r.IsLow() && r.lowStockAlerted:
		r.lowStockAlerted = false
		return true
	default:
		return false
	}
}

// SetStock replaces the physical stock level and threshold. The reserved
// quantity is untouched, so the new total may not drop below it.
func (r *Record) SetStock(totalQuantity, lowStockThreshold int, at time.Time) error {
	if err := r.Validate(); err != nil {
		return err
	}
	if totalQuantity < r.reservedQuantity {
		return errs.NewOperationNotAllowedError("set stock level",
			fmt.Sprintf("total %d is below reserved %d", totalQuantity, r.reservedQuantity))
	}
	if lowStockThreshold < 0 {
		return errs.NewValueIsOutOfRangeError("low_stock_threshold", lowStockThreshold, 0, "unbounded")
	}

	r.totalQuantity = totalQuantity
	r.lowStockThreshold = lowStockThreshold
	r.updatedAt = at.UTC()
	return nil
}
