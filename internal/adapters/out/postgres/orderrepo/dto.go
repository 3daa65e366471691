// Package orderrepo maps order aggregates to the orders and order_items tables.
package orderrepo

import (
	"time"

	"ordering/internal/adapters/out/postgres/historyrepo"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the orders row. Items and the status history hang off it with
// cascading foreign keys, so deleting the row removes both.
type OrderDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber   string    `gorm:"type:varchar(32);uniqueIndex:uq_orders_number;not null"`
	Status        string    `gorm:"type:varchar(32);index;not null"`
	PaymentStatus string    `gorm:"type:varchar(16);index;not null"`
	Priority      string    `gorm:"type:varchar(16);not null"`
	DeliveryType  string    `gorm:"type:varchar(16);index;not null"`

	CustomerID    string `gorm:"type:varchar(64);index"`
	CustomerName  string `gorm:"type:varchar(255);not null"`
	CustomerPhone string `gorm:"type:varchar(64);not null"`
	CustomerEmail string `gorm:"type:varchar(255)"`

	DeliveryAddress       string `gorm:"type:text"`
	DeliveryNotes         string `gorm:"type:text"`
	RequestedDeliveryTime *time.Time

	Subtotal       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TaxAmount      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DeliveryFee    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalAmount    decimal.Decimal `gorm:"type:numeric(14,2);not null"`

	SpecialInstructions string `gorm:"type:text"`
	EstimatedPrepTime   int

	CreatedAt   time.Time `gorm:"not null;index"`
	UpdatedAt   time.Time `gorm:"not null"`
	ConfirmedAt *time.Time
	CancelledAt *time.Time
	DeliveredAt *time.Time

	Items   []OrderItemDTO                `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
	History []historyrepo.StatusChangeDTO `gorm:"foreignKey:OrderID;references:ID;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO is one order_items row. Position keeps the submitted order of lines.
type OrderItemDTO struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID         uuid.UUID       `gorm:"type:uuid;index;not null"`
	Position        int             `gorm:"not null"`
	ProductID       string          `gorm:"type:varchar(64);index;not null"`
	ProductName     string          `gorm:"type:varchar(255)"`
	UnitPrice       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Quantity        int             `gorm:"not null"`
	TotalPrice      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	SpecialRequests string          `gorm:"type:text"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(o *order.Order) OrderDTO {
	customer := o.Customer()
	fulfilment := o.Fulfilment()
	totals := o.Totals()

	items := make([]OrderItemDTO, 0, len(o.Items()))
	for i, it := range o.Items() {
		items = append(items, OrderItemDTO{
			ID:              it.ID().Bytes(),
			OrderID:         o.ID().Bytes(),
			Position:        i,
			ProductID:       it.ProductID(),
			ProductName:     it.ProductName(),
			UnitPrice:       it.UnitPrice().Decimal(),
			Quantity:        it.Quantity(),
			TotalPrice:      it.TotalPrice().Decimal(),
			SpecialRequests: it.SpecialRequests(),
		})
	}

	return OrderDTO{
		ID:                    o.ID().Bytes(),
		OrderNumber:           o.Number().String(),
		Status:                o.Status().String(),
		PaymentStatus:         o.PaymentStatus().String(),
		Priority:              o.Priority().String(),
		DeliveryType:          fulfilment.Type().String(),
		CustomerID:            customer.ID(),
		CustomerName:          customer.Name(),
		CustomerPhone:         customer.Phone(),
		CustomerEmail:         customer.Email(),
		DeliveryAddress:       fulfilment.Address(),
		DeliveryNotes:         fulfilment.Notes(),
		RequestedDeliveryTime: fulfilment.RequestedAt(),
		Subtotal:              totals.Subtotal().Decimal(),
		TaxAmount:             totals.Tax().Decimal(),
		DeliveryFee:           totals.DeliveryFee().Decimal(),
		DiscountAmount:        totals.Discount().Decimal(),
		TotalAmount:           totals.Total().Decimal(),
		SpecialInstructions:   o.SpecialInstructions(),
		EstimatedPrepTime:     o.EstimatedPrepMinutes(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		ConfirmedAt:           o.ConfirmedAt(),
		CancelledAt:           o.CancelledAt(),
		DeliveredAt:           o.DeliveredAt(),
		Items:                 items,
	}
}

// statusColumns are written by UpdateStatus.
func statusColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"status":         dto.Status,
		"payment_status": dto.PaymentStatus,
		"updated_at":     dto.UpdatedAt,
		"confirmed_at":   dto.ConfirmedAt,
		"cancelled_at":   dto.CancelledAt,
		"delivered_at":   dto.DeliveredAt,
	}
}

// detailColumns are written by UpdateDetails.
func detailColumns(dto OrderDTO) map[string]any {
	return map[string]any{
		"payment_status":       dto.PaymentStatus,
		"priority":             dto.Priority,
		"customer_name":        dto.CustomerName,
		"customer_phone":       dto.CustomerPhone,
		"customer_email":       dto.CustomerEmail,
		"delivery_address":     dto.DeliveryAddress,
		"delivery_notes":       dto.DeliveryNotes,
		"special_instructions": dto.SpecialInstructions,
		"estimated_prep_time":  dto.EstimatedPrepTime,
		"updated_at":           dto.UpdatedAt,
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	customer, err := order.NewCustomer(dto.CustomerID, dto.CustomerName, dto.CustomerPhone, dto.CustomerEmail)
	if err != nil {
		return nil, err
	}

	fulfilment, err := order.NewFulfilment(
		order.DeliveryType(dto.DeliveryType),
		dto.DeliveryAddress,
		dto.DeliveryNotes,
		dto.RequestedDeliveryTime,
	)
	if err != nil {
		return nil, err
	}

	totals, err := order.RestoreTotals(
		kernel.RestoreMoney(dto.Subtotal),
		kernel.RestoreMoney(dto.TaxAmount),
		kernel.RestoreMoney(dto.DeliveryFee),
		kernel.RestoreMoney(dto.DiscountAmount),
		kernel.RestoreMoney(dto.TotalAmount),
	)
	if err != nil {
		return nil, err
	}

	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ID[:])
		if err != nil {
			return nil, err
		}
		item, err := order.RestoreItem(
			itemID,
			itemDTO.ProductID,
			itemDTO.ProductName,
			kernel.RestoreMoney(itemDTO.UnitPrice),
			itemDTO.Quantity,
			kernel.RestoreMoney(itemDTO.TotalPrice),
			itemDTO.SpecialRequests,
		)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return order.RestoreOrder(order.Snapshot{
		ID:                   id,
		Number:               order.Number(dto.OrderNumber),
		Status:               order.Status(dto.Status),
		PaymentStatus:        order.PaymentStatus(dto.PaymentStatus),
		Priority:             order.Priority(dto.Priority),
		Customer:             customer,
		Fulfilment:           fulfilment,
		Items:                items,
		Totals:               totals,
		SpecialInstructions:  dto.SpecialInstructions,
		EstimatedPrepMinutes: dto.EstimatedPrepTime,
		CreatedAt:            dto.CreatedAt,
		UpdatedAt:            dto.UpdatedAt,
		ConfirmedAt:          dto.ConfirmedAt,
		CancelledAt:          dto.CancelledAt,
		DeliveredAt:          dto.DeliveredAt,
	})
}
