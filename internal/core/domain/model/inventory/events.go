package inventory

import "ordering/internal/core/domain/model/events"

const (
	EventReserved = "inventory.reserved"
	EventReleased = "inventory.released"
	EventLowStock = "inventory.low_stock"
)

// AlertType distinguishes a low from an empty shelf.
type AlertType string

const (
	AlertLowStock   AlertType = "LOW_STOCK"
	AlertOutOfStock AlertType = "OUT_OF_STOCK"
)

type ReservedEvent struct {
	events.Base
	ReservationID string `json:"reservation_id"`
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	Available     int    `json:"available"`
}

type ReleasedEvent struct {
	events.Base
	ReservationID string `json:"reservation_id"`
	ProductID     string `json:"product_id"`
	Quantity      int    `json:"quantity"`
	Available     int    `json:"available"`
}

type LowStockEvent struct {
	events.Base
	ProductID string    `json:"product_id"`
	Current   int       `json:"current"`
	Threshold int       `json:"threshold"`
	AlertType AlertType `json:"alert_type"`
}
