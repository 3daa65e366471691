package inventory

import (
	"fmt"
	"sort"
	"strings"

	"ordering/internal/pkg/errs"
)

const maxLineQuantity = 100000

// Line is one product quantity of a reservation or release request.
// ReservationID is supplied by the caller and makes resubmission idempotent.
type Line struct {
	productID     string
	quantity      int
	reservationID string
}

func NewLine(productID string, quantity int, reservationID string) (Line, error) {
	productID = strings.TrimSpace(productID)
	reservationID = strings.TrimSpace(reservationID)

	switch {
	case productID == "":
		return Line{}, errs.NewValueIsRequiredError("product_id")
	case reservationID == "":
		return Line{}, errs.NewValueIsRequiredError("reservation_id")
	case quantity <= 0 || quantity > maxLineQuantity:
		return Line{}, errs.NewValueIsOutOfRangeError("quantity", quantity, 1, maxLineQuantity)
	}

	return Line{productID: productID, quantity: quantity, reservationID: reservationID}, nil
}

func (l Line) ProductID() string     { return l.productID }
func (l Line) Quantity() int         { return l.quantity }
func (l Line) ReservationID() string { return l.reservationID }

// Batch is a non-empty set of lines processed all-or-nothing. Lines are kept
// sorted by product so that concurrent batches lock rows in the same order.
type Batch struct {
	lines []Line
}

func NewBatch(lines []Line) (Batch, error) {
	if len(lines) == 0 {
		return Batch{}, errs.NewValueIsRequiredError("reservations")
	}

	sorted := make([]Line, len(lines))
	copy(sorted, lines)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].productID != sorted[j].productID {
			return sorted[i].productID < sorted[j].productID
		}
		return sorted[i].reservationID < sorted[j].reservationID
	})

	for i := 1; i < len(sorted); i++ {
		prev, cur := sorted[i-1], sorted[i]
		if prev.productID == cur.productID && prev.reservationID == cur.reservationID {
			return Batch{}, errs.NewValueIsInvalidErrorWithCause("reservations",
				fmt.Errorf("product %s appears twice in reservation %s", cur.productID, cur.reservationID))
		}
	}

	return Batch{lines: sorted}, nil
}

func (b Batch) Lines() []Line {
	out := make([]Line, len(b.lines))
	copy(out, b.lines)
	return out
}

func (b Batch) Len() int {
	return len(b.lines)
}
