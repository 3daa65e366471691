package order

import (
	"time"

	"ordering/internal/core/domain/model/events"
)

const (
	EventCreated       = "order.created"
	EventStatusChanged = "order.status.changed"
)

// CreatedEvent carries a snapshot of the freshly created order.
type CreatedEvent struct {
	events.Base
	OrderID       string             `json:"order_id"`
	OrderNumber   string             `json:"order_number"`
	Status        string             `json:"status"`
	PaymentStatus string             `json:"payment_status"`
	DeliveryType  string             `json:"delivery_type"`
	Priority      string             `json:"priority"`
	CustomerID    string             `json:"customer_id,omitempty"`
	CustomerName  string             `json:"customer_name"`
	Subtotal      string             `json:"subtotal"`
	TaxAmount     string             `json:"tax_amount"`
	DeliveryFee   string             `json:"delivery_fee"`
	Discount      string             `json:"discount_amount"`
	TotalAmount   string             `json:"total_amount"`
	Items         []CreatedEventItem `json:"items"`
	CreatedAt     time.Time          `json:"created_at"`
}

type CreatedEventItem struct {
	ProductID  string `json:"product_id"`
	Quantity   int    `json:"quantity"`
	UnitPrice  string `json:"unit_price"`
	TotalPrice string `json:"total_price"`
}

// StatusChangedEvent mirrors one ledger entry.
type StatusChangedEvent struct {
	events.Base
	OrderID  string `json:"order_id"`
	Previous string `json:"previous"`
	New      string `json:"new"`
	Actor    string `json:"actor"`
	Reason   string `json:"reason,omitempty"`
}

func newCreatedEvent(o *Order) CreatedEvent {
	items := make([]CreatedEventItem, 0, len(o.items))
	for _, it := range o.items {
		items = append(items, CreatedEventItem{
			ProductID:  it.ProductID(),
			Quantity:   it.Quantity(),
			UnitPrice:  it.UnitPrice().String(),
			TotalPrice: it.TotalPrice().String(),
		})
	}

	return CreatedEvent{
		Base:          events.NewBase(EventCreated, o.id.String(), o.createdAt),
		OrderID:       o.id.String(),
		OrderNumber:   o.number.String(),
		Status:        o.status.String(),
		PaymentStatus: o.paymentStatus.String(),
		DeliveryType:  o.fulfilment.Type().String(),
		Priority:      o.priority.String(),
		CustomerID:    o.customer.ID(),
		CustomerName:  o.customer.Name(),
		Subtotal:      o.totals.Subtotal().String(),
		TaxAmount:     o.totals.Tax().String(),
		DeliveryFee:   o.totals.DeliveryFee().String(),
		Discount:      o.totals.Discount().String(),
		TotalAmount:   o.totals.Total().String(),
		Items:         items,
		CreatedAt:     o.createdAt,
	}
}

func newStatusChangedEvent(change StatusChange) StatusChangedEvent {
	previous := ""
	if change.previous != nil {
		previous = change.previous.String()
	}

	return StatusChangedEvent{
		Base:     events.NewBase(EventStatusChanged, change.orderID.String(), change.createdAt),
		OrderID:  change.orderID.String(),
		Previous: previous,
		New:      change.next.String(),
		Actor:    change.changedBy,
		Reason:   change.reason,
	}
}
