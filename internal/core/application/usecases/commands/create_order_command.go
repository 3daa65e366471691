package commands

import (
	"errors"
	"strings"
	"time"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/pkg/errs"
	"ordering/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

const maxIdempotencyKeyLength = 128

// CreateOrderItem is one requested line of a new order.
type CreateOrderItem struct {
	ProductID       string
	ProductName     string
	UnitPrice       kernel.Money
	Quantity        int
	SpecialRequests string
}

// CreateOrderParams is the raw input of NewCreateOrderCommand.
type CreateOrderParams struct {
	CustomerID            string
	CustomerName          string
	CustomerPhone         string
	CustomerEmail         string
	DeliveryType          order.DeliveryType
	DeliveryAddress       string
	DeliveryNotes         string
	RequestedDeliveryTime *time.Time
	Items                 []CreateOrderItem
	Discount              kernel.Money
	Priority              order.Priority
	SpecialInstructions   string
	EstimatedPrepMinutes  int
	Actor                 string
	IdempotencyKey        string
}

// CreateOrderCommand represents a validated request to place an order.
// Every field is checked up front, so nothing is written for invalid input.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(CreateOrderParams{
//	    CustomerName: "Ann", CustomerPhone: "+100",
//	    DeliveryType: order.Pickup,
//	    Items:        []CreateOrderItem{{ProductID: "x", UnitPrice: price, Quantity: 2}},
//	    Actor:        "user-1",
//	})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customer             order.Customer
	fulfilment           order.Fulfilment
	items                []order.Item
	discount             kernel.Money
	priority             order.Priority
	specialInstructions  string
	estimatedPrepMinutes int
	actor                string
	idempotencyKey       string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates p and reports every problem at once.
func NewCreateOrderCommand(p CreateOrderParams) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		discount:             p.Discount,
		specialInstructions:  strings.TrimSpace(p.SpecialInstructions),
		estimatedPrepMinutes: p.EstimatedPrepMinutes,
		guard:                guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomer(p),
		cmd.setFulfilment(p),
		cmd.setItems(p.Items),
		cmd.setDiscount(p.Discount),
		cmd.setPriority(p.Priority),
		cmd.setActor(p.Actor),
		cmd.setIdempotencyKey(p.IdempotencyKey),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) Customer() order.Customer     { return c.customer }
func (c CreateOrderCommand) Fulfilment() order.Fulfilment { return c.fulfilment }
func (c CreateOrderCommand) Discount() kernel.Money       { return c.discount }
func (c CreateOrderCommand) Priority() order.Priority     { return c.priority }
func (c CreateOrderCommand) SpecialInstructions() string  { return c.specialInstructions }
func (c CreateOrderCommand) EstimatedPrepMinutes() int    { return c.estimatedPrepMinutes }
func (c CreateOrderCommand) Actor() string                { return c.actor }

// IdempotencyKey is empty when the client did not send one.
func (c CreateOrderCommand) IdempotencyKey() string { return c.idempotencyKey }

func (c CreateOrderCommand) Items() []order.Item {
	out := make([]order.Item, len(c.items))
	copy(out, c.items)
	return out
}

func (c *CreateOrderCommand) setCustomer(p CreateOrderParams) error {
	customer, err := order.NewCustomer(p.CustomerID, p.CustomerName, p.CustomerPhone, p.CustomerEmail)
	if err != nil {
		return err
	}

	c.customer = customer
	return nil
}

func (c *CreateOrderCommand) setFulfilment(p CreateOrderParams) error {
	fulfilment, err := order.NewFulfilment(p.DeliveryType, p.DeliveryAddress, p.DeliveryNotes, p.RequestedDeliveryTime)
	if err != nil {
		return err
	}

	c.fulfilment = fulfilment
	return nil
}

func (c *CreateOrderCommand) setItems(raw []CreateOrderItem) error {
	if len(raw) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	items := make([]order.Item, 0, len(raw))
	var itemErrs []error
	for _, r := range raw {
		if r.UnitPrice.IsNegative() {
			itemErrs = append(itemErrs, errs.NewValueIsOutOfRangeError("unit_price", r.UnitPrice.String(), 0, "unbounded"))
			continue
		}
		item, err := order.NewItem(r.ProductID, r.ProductName, r.UnitPrice, r.Quantity, r.SpecialRequests)
		if err != nil {
			itemErrs = append(itemErrs, err)
			continue
		}
		items = append(items, item)
	}
	if err := errors.Join(itemErrs...); err != nil {
		return err
	}

	c.items = items
	return nil
}

func (c *CreateOrderCommand) setDiscount(discount kernel.Money) error {
	if discount.IsNegative() {
		return errs.NewValueIsOutOfRangeError("discount_amount", discount.String(), 0, "unbounded")
	}

	c.discount = discount
	return nil
}

func (c *CreateOrderCommand) setPriority(priority order.Priority) error {
	if priority == "" {
		priority = order.PriorityNormal
	}
	if err := priority.Validate(); err != nil {
		return err
	}

	c.priority = priority
	return nil
}

func (c *CreateOrderCommand) setActor(actor string) error {
	actor = strings.TrimSpace(actor)
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}

	c.actor = actor
	return nil
}

func (c *CreateOrderCommand) setIdempotencyKey(key string) error {
	key = strings.TrimSpace(key)
	if len(key) > maxIdempotencyKeyLength {
		return errs.NewValueIsOutOfRangeError("idempotency_key", len(key), 0, maxIdempotencyKeyLength)
	}

	c.idempotencyKey = key
	return nil
}
