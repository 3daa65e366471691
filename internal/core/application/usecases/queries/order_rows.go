package queries

import (
	"fmt"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderColumns = `
	id, order_number, status, payment_status, priority, delivery_type,
	customer_id, customer_name, customer_phone, customer_email,
	delivery_address, delivery_notes, requested_delivery_time,
	subtotal, tax_amount, delivery_fee, discount_amount, total_amount,
	special_instructions, estimated_prep_time,
	created_at, updated_at, confirmed_at, cancelled_at, delivered_at`

type rowScanner interface {
	Scan(dest ...any) error
}

// scanOrder reads one row selected with orderColumns.
func scanOrder(row rowScanner) (OrderView, error) {
	var (
		v  OrderView
		id uuid.UUID
	)

	err := row.Scan(
		&id, &v.OrderNumber, &v.Status, &v.PaymentStatus, &v.Priority, &v.DeliveryType,
		&v.CustomerID, &v.CustomerName, &v.CustomerPhone, &v.CustomerEmail,
		&v.DeliveryAddress, &v.DeliveryNotes, &v.RequestedDeliveryTime,
		&v.Subtotal, &v.TaxAmount, &v.DeliveryFee, &v.DiscountAmount, &v.TotalAmount,
		&v.SpecialInstructions, &v.EstimatedPrepTime,
		&v.CreatedAt, &v.UpdatedAt, &v.ConfirmedAt, &v.CancelledAt, &v.DeliveredAt,
	)
	if err != nil {
		return OrderView{}, err
	}

	v.ID, err = kernel.UUIDFromBytes(id[:])
	if err != nil {
		return OrderView{}, err
	}
	return v, nil
}

// ownedWithin narrows orders to one customer and a created_at window.
// Empty arguments do not filter.
func ownedWithin(customerID string, from, to time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if customerID != "" {
			db = db.Where("customer_id = ?", customerID)
		}
		if !from.IsZero() {
			db = db.Where("created_at >= ?", from.UTC())
		}
		if !to.IsZero() {
			db = db.Where("created_at <= ?", to.UTC())
		}
		return db
	}
}

func validatePeriod(from, to time.Time) error {
	if !from.IsZero() && !to.IsZero() && to.Before(from) {
		return errs.NewValueIsInvalidErrorWithCause("end_date",
			fmt.Errorf("end %s is before start %s", to.UTC().Format(time.RFC3339), from.UTC().Format(time.RFC3339)))
	}
	return nil
}
