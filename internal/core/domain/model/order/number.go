package order

import (
	"fmt"
	"time"

	"ordering/internal/pkg/errs"
)

const numberPrefix = "ORD"

// Number is the human-facing order number: ORD, the UTC day as YYYYMMDD and
// the same-day sequence padded to at least four digits.
type Number string

func NewNumber(day time.Time, sequence int64) (Number, error) {
	if sequence <= 0 {
		return "", errs.NewValueIsOutOfRangeError("order_number_sequence", sequence, 1, "unbounded")
	}
	return Number(fmt.Sprintf("%s%04d", NumberPrefix(day), sequence)), nil
}

// NumberPrefix is the part shared by every order number of day.
func NumberPrefix(day time.Time) string {
	return numberPrefix + day.UTC().Format("20060102")
}

func (n Number) String() string { return string(n) }

// Day truncates t to the UTC calendar day used for numbering.
func Day(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
