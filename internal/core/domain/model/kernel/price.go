package kernel

import (
	"fmt"

	"salesdelivery/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// PricePrecision is the number of decimal places prices are stored with.
const PricePrecision = 2

// NewPrice validates a unit price and rounds it to PricePrecision places.
// Negative amounts are rejected; zero is a valid (free) price.
func NewPrice(name string, amount decimal.Decimal) (decimal.Decimal, error) {
	if amount.IsNegative() {
		return decimal.Zero, errs.NewValueIsInvalidErrorWithCause(
			name,
			fmt.Errorf("%s is negative", amount.String()),
		)
	}
	return amount.Round(PricePrecision), nil
}
