package expense

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// ParseAmount reads a user-supplied money amount. Both "." and "," work as
// the decimal separator. The result is positive and rounded half-up to
// cents.
func ParseAmount(text string) (decimal.Decimal, error) {
	text = strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	amount, err := decimal.NewFromString(text)
	if err != nil {
		return decimal.Decimal{}, errors.Wrap(err, "parse amount")
	}
	amount = amount.Round(2)
	if !amount.IsPositive() {
		return decimal.Decimal{}, errors.New("amount must be positive")
	}
	return amount, nil
}
