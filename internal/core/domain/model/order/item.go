package order

import (
	"errors"
	"fmt"
	"strings"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/pkg/errs"
)

const maxItemQuantity = 10000

// Item is one order line. totalPrice always equals unitPrice × quantity.
type Item struct {
	id              kernel.UUID
	productID       string
	productName     string
	unitPrice       kernel.Money
	quantity        int
	totalPrice      kernel.Money
	specialRequests string
}

func NewItem(productID, productName string, unitPrice kernel.Money, quantity int, specialRequests string) (Item, error) {
	item := Item{
		id:              kernel.NewUUID(),
		productName:     strings.TrimSpace(productName),
		unitPrice:       unitPrice,
		specialRequests: strings.TrimSpace(specialRequests),
	}

	if err := errors.Join(
		item.setProductID(productID),
		item.setQuantity(quantity),
	); err != nil {
		return Item{}, err
	}

	item.totalPrice = unitPrice.MulQuantity(quantity)
	return item, nil
}

// RestoreItem rebuilds a persisted line and re-checks the price invariant.
func RestoreItem(
	id kernel.UUID,
	productID, productName string,
	unitPrice kernel.Money,
	quantity int,
	totalPrice kernel.Money,
	specialRequests string,
) (Item, error) {
	if err := id.Validate(); err != nil {
		return Item{}, err
	}

	item, err := NewItem(productID, productName, unitPrice, quantity, specialRequests)
	if err != nil {
		return Item{}, err
	}

	if !item.totalPrice.Equal(totalPrice) {
		return Item{}, errs.NewValueIsInvalidErrorWithCause("total_price",
			fmt.Errorf("%s does not equal %s x %d", totalPrice, unitPrice, quantity))
	}

	item.id = id
	return item, nil
}

func (i Item) ID() kernel.UUID          { return i.id }
func (i Item) ProductID() string        { return i.productID }
func (i Item) ProductName() string      { return i.productName }
func (i Item) UnitPrice() kernel.Money  { return i.unitPrice }
func (i Item) Quantity() int            { return i.quantity }
func (i Item) TotalPrice() kernel.Money { return i.totalPrice }
func (i Item) SpecialRequests() string  { return i.specialRequests }

func (i *Item) setProductID(productID string) error {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return errs.NewValueIsRequiredError("product_id")
	}
	i.productID = productID
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 || quantity > maxItemQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxItemQuantity)
	}
	i.quantity = quantity
	return nil
}
