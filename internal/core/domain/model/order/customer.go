package order

import (
	"errors"
	"net/mail"
	"strings"
	"time"

	"ordering/internal/pkg/errs"
)

const maxContactLength = 255

// Customer holds the contact details captured with an order. ID is an
// optional reference to the customer in the user service.
type Customer struct {
	id    string
	name  string
	phone string
	email string
}

func NewCustomer(id, name, phone, email string) (Customer, error) {
	c := Customer{id: strings.TrimSpace(id)}
	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
		c.setEmail(email),
	); err != nil {
		return Customer{}, err
	}
	return c, nil
}

func (c Customer) ID() string    { return c.id }
func (c Customer) Name() string  { return c.name }
func (c Customer) Phone() string { return c.phone }
func (c Customer) Email() string { return c.email }

func (c *Customer) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("customer_name")
	}
	if len(name) > maxContactLength {
		return errs.NewValueIsOutOfRangeError("customer_name", len(name), 1, maxContactLength)
	}
	c.name = name
	return nil
}

func (c *Customer) setPhone(phone string) error {
	phone = strings.TrimSpace(phone)
	if phone == "" {
		return errs.NewValueIsRequiredError("customer_phone")
	}
	c.phone = phone
	return nil
}

func (c *Customer) setEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		c.email = ""
		return nil
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return errs.NewValueIsInvalidErrorWithCause("customer_email", err)
	}
	c.email = email
	return nil
}

// Fulfilment describes how the order reaches the customer.
type Fulfilment struct {
	deliveryType DeliveryType
	address      string
	notes        string
	requestedAt  *time.Time
}

// NewFulfilment rejects DELIVERY orders without an address.
func NewFulfilment(deliveryType DeliveryType, address, notes string, requestedAt *time.Time) (Fulfilment, error) {
	if err := deliveryType.Validate(); err != nil {
		return Fulfilment{}, err
	}

	address = strings.TrimSpace(address)
	if deliveryType == Delivery && address == "" {
		return Fulfilment{}, errs.NewValueIsRequiredError("delivery_address")
	}

	var at *time.Time
	if requestedAt != nil {
		t := requestedAt.UTC()
		at = &t
	}

	return Fulfilment{
		deliveryType: deliveryType,
		address:      address,
		notes:        strings.TrimSpace(notes),
		requestedAt:  at,
	}, nil
}

func (f Fulfilment) Type() DeliveryType      { return f.deliveryType }
func (f Fulfilment) Address() string         { return f.address }
func (f Fulfilment) Notes() string           { return f.notes }
func (f Fulfilment) RequestedAt() *time.Time { return f.requestedAt }
