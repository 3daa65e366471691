package http

import (
	"time"

	"ordering/internal/core/application/usecases/commands"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/inventory"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/generated/servers"

	"github.com/shopspring/decimal"
)

const moneyPlaces = 2

func toOrderResponse(o *order.Order) servers.Order {
	customer := o.Customer()
	fulfilment := o.Fulfilment()
	totals := o.Totals()

	domainItems := o.Items()
	items := make([]servers.OrderItem, len(domainItems))
	for i, it := range domainItems {
		items[i] = servers.OrderItem{
			Id:              it.ID().Bytes(),
			ProductId:       it.ProductID(),
			ProductName:     it.ProductName(),
			UnitPrice:       it.UnitPrice().String(),
			Quantity:        it.Quantity(),
			TotalPrice:      it.TotalPrice().String(),
			SpecialRequests: optional(it.SpecialRequests()),
		}
	}

	return servers.Order{
		Id:                    o.ID().Bytes(),
		OrderNumber:           o.Number().String(),
		Status:                servers.OrderStatus(o.Status()),
		PaymentStatus:         servers.PaymentStatus(o.PaymentStatus()),
		Priority:              servers.Priority(o.Priority()),
		DeliveryType:          servers.DeliveryType(fulfilment.Type()),
		CustomerId:            optional(customer.ID()),
		CustomerName:          customer.Name(),
		CustomerPhone:         customer.Phone(),
		CustomerEmail:         optional(customer.Email()),
		DeliveryAddress:       optional(fulfilment.Address()),
		DeliveryNotes:         optional(fulfilment.Notes()),
		RequestedDeliveryTime: fulfilment.RequestedAt(),
		Subtotal:              totals.Subtotal().String(),
		TaxAmount:             totals.Tax().String(),
		DeliveryFee:           totals.DeliveryFee().String(),
		DiscountAmount:        totals.Discount().String(),
		TotalAmount:           totals.Total().String(),
		SpecialInstructions:   optional(o.SpecialInstructions()),
		EstimatedPrepTime:     o.EstimatedPrepMinutes(),
		CreatedAt:             o.CreatedAt(),
		UpdatedAt:             o.UpdatedAt(),
		ConfirmedAt:           o.ConfirmedAt(),
		CancelledAt:           o.CancelledAt(),
		DeliveredAt:           o.DeliveredAt(),
		Items:                 &items,
	}
}

func toOrderView(v queries.OrderView) servers.Order {
	resp := servers.Order{
		Id:                    v.ID.Bytes(),
		OrderNumber:           v.OrderNumber,
		Status:                servers.OrderStatus(v.Status),
		PaymentStatus:         servers.PaymentStatus(v.PaymentStatus),
		Priority:              servers.Priority(v.Priority),
		DeliveryType:          servers.DeliveryType(v.DeliveryType),
		CustomerId:            optional(v.CustomerID),
		CustomerName:          v.CustomerName,
		CustomerPhone:         v.CustomerPhone,
		CustomerEmail:         optional(v.CustomerEmail),
		DeliveryAddress:       optional(v.DeliveryAddress),
		DeliveryNotes:         optional(v.DeliveryNotes),
		RequestedDeliveryTime: v.RequestedDeliveryTime,
		Subtotal:              formatMoney(v.Subtotal),
		TaxAmount:             formatMoney(v.TaxAmount),
		DeliveryFee:           formatMoney(v.DeliveryFee),
		DiscountAmount:        formatMoney(v.DiscountAmount),
		TotalAmount:           formatMoney(v.TotalAmount),
		SpecialInstructions:   optional(v.SpecialInstructions),
		EstimatedPrepTime:     v.EstimatedPrepTime,
		CreatedAt:             v.CreatedAt,
		UpdatedAt:             v.UpdatedAt,
		ConfirmedAt:           v.ConfirmedAt,
		CancelledAt:           v.CancelledAt,
		DeliveredAt:           v.DeliveredAt,
	}

	if v.Items != nil {
		items := make([]servers.OrderItem, len(v.Items))
		for i, it := range v.Items {
			items[i] = servers.OrderItem{
				Id:              it.ID.Bytes(),
				ProductId:       it.ProductID,
				ProductName:     it.ProductName,
				UnitPrice:       formatMoney(it.UnitPrice),
				Quantity:        it.Quantity,
				TotalPrice:      formatMoney(it.TotalPrice),
				SpecialRequests: optional(it.SpecialRequests),
			}
		}
		resp.Items = &items
	}

	return resp
}

func toOrderList(page queries.OrderPage) servers.OrderList {
	orders := make([]servers.Order, len(page.Orders))
	for i, v := range page.Orders {
		orders[i] = toOrderView(v)
	}
	return servers.OrderList{Orders: orders, Total: page.Total, Limit: page.Limit, Offset: page.Offset}
}

func toOrderStats(v queries.OrderStats) servers.OrderStats {
	byStatus := make(map[string]int64, len(v.ByStatus))
	for status, count := range v.ByStatus {
		byStatus[status.String()] = count
	}
	return servers.OrderStats{
		TotalOrders:       v.TotalOrders,
		OrdersByStatus:    byStatus,
		TotalRevenue:      v.TotalRevenue.StringFixed(2),
		AverageOrderValue: v.AverageOrderValue.StringFixed(2),
		AveragePrepTime:   v.AveragePrepMinutes.InexactFloat64(),
	}
}

func toStatusHistory(v queries.StatusHistoryView) servers.StatusHistory {
	entries := make([]servers.StatusHistoryEntry, len(v.Entries))
	for i, e := range v.Entries {
		var previous *servers.OrderStatus
		if e.PreviousStatus != nil {
			p := servers.OrderStatus(*e.PreviousStatus)
			previous = &p
		}
		entries[i] = servers.StatusHistoryEntry{
			Id:             e.ID.Bytes(),
			PreviousStatus: previous,
			NewStatus:      servers.OrderStatus(e.NewStatus),
			ChangedBy:      e.ChangedBy,
			Reason:         optional(e.Reason),
			CreatedAt:      e.CreatedAt,
		}
	}

	return servers.StatusHistory{
		OrderId:        v.OrderID.Bytes(),
		CurrentStatus:  servers.OrderStatus(v.CurrentStatus),
		ReplayedStatus: servers.OrderStatus(v.ReplayedStatus),
		Consistent:     v.Consistent,
		Entries:        entries,
	}
}

func toReservationResult(outcomes []commands.LineOutcome) servers.ReservationResult {
	lines := make([]servers.ReservationOutcome, len(outcomes))
	for i, o := range outcomes {
		lines[i] = servers.ReservationOutcome{
			ProductId:     o.ProductID,
			ReservationId: o.ReservationID,
			Quantity:      o.Quantity,
			Available:     o.Available,
			Replayed:      o.Replayed,
		}
	}
	return servers.ReservationResult{Lines: lines}
}

func toInventoryLevel(v queries.InventoryView) servers.InventoryLevel {
	return servers.InventoryLevel{
		ProductId:         v.ProductID,
		TotalQuantity:     v.TotalQuantity,
		ReservedQuantity:  v.ReservedQuantity,
		Available:         v.Available,
		LowStockThreshold: v.LowStockThreshold,
		LowStockAlerted:   v.LowStockAlerted,
		UpdatedAt:         v.UpdatedAt,
	}
}

func toInventoryRecord(r *inventory.Record) servers.InventoryLevel {
	return servers.InventoryLevel{
		ProductId:         r.ProductID(),
		TotalQuantity:     r.TotalQuantity(),
		ReservedQuantity:  r.ReservedQuantity(),
		Available:         r.Available(),
		LowStockThreshold: r.LowStockThreshold(),
		LowStockAlerted:   r.LowStockAlerted(),
		UpdatedAt:         r.UpdatedAt(),
	}
}

func formatMoney(d decimal.Decimal) string {
	return d.StringFixed(moneyPlaces)
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func derefTime(p *time.Time) time.Time {
	if p == nil {
		return time.Time{}
	}
	return *p
}
