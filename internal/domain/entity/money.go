package entity

import (
	"strings"

	"github.com/shopspring/decimal"

	errs "github.com/mehak6/accounting/internal/domain/error"
)

// MaxDecimalPlaces defines the maximum number of decimal places allowed for
// money amounts
const MaxDecimalPlaces = 2

// currencyNoise lists the symbols and separators stripped from user-entered
// amounts before parsing
var currencyNoise = []string{"₹", "Rs.", "Rs", "INR", "$", ","}

// ParseAmount parses a user-entered amount string into a strictly positive
// decimal. Currency symbols and thousands separators are tolerated; more than
// two decimal places are not.
func ParseAmount(amount string) (decimal.Decimal, error) {
	amount = strings.TrimSpace(amount)
	for _, noise := range currencyNoise {
		amount = strings.ReplaceAll(amount, noise, "")
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return decimal.Zero, errs.ErrInvalidAmount
	}

	value, err := decimal.NewFromString(amount)
	if err != nil {
		return decimal.Zero, errs.ErrInvalidAmount
	}
	if value.Exponent() < -MaxDecimalPlaces {
		return decimal.Zero, errs.ErrInvalidAmount
	}
	if !value.IsPositive() {
		return decimal.Zero, errs.ErrNonPositiveAmount
	}

	return value, nil
}

// FormatAmount renders a monetary value with exactly two decimal places
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(MaxDecimalPlaces)
}
