package kernel

import (
	"fmt"
	"math"

	"orderdesk/internal/pkg/errs"
)

// Money is an amount in cents. Menu prices and receipt totals never go through
// floating point.
type Money int64

// NewMoneyFromDollars converts a decimal dollar amount such as 4.50 to cents,
// rounding half away from zero. Negative amounts are rejected.
func NewMoneyFromDollars(dollars float64) (Money, error) {
	if dollars < 0 || math.IsNaN(dollars) || math.IsInf(dollars, 0) {
		return 0, errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%v is not a valid amount", dollars))
	}
	return Money(math.Round(dollars * 100)), nil
}

// Cents returns the raw amount.
func (m Money) Cents() int64 {
	return int64(m)
}

// Times multiplies a unit price by a quantity. The product saturates at
// math.MaxInt64 or math.MinInt64 instead of wrapping.
func (m Money) Times(qty int) Money {
	if m == 0 || qty == 0 {
		return 0
	}
	product := m * Money(qty)
	if product/Money(qty) != m || (qty == -1 && m == math.MinInt64) {
		if (m < 0) != (qty < 0) {
			return math.MinInt64
		}
		return math.MaxInt64
	}
	return product
}

// Dollars returns the amount as a float for JSON responses.
func (m Money) Dollars() float64 {
	return float64(m) / 100
}

// String formats the amount as "$12.50".
func (m Money) String() string {
	return fmt.Sprintf("$%d.%02d", m/100, m%100)
}
