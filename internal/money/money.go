// Package money converts boundary decimal amounts to integer minor units (cents)
// and back. Everything below the API layer works in minor units only.
package money

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"github.com/hsa-card/hsa_engine/internal/domain"
)

// Scale is the number of fractional digits carried by minor units.
const Scale = 2

var maxMinor = decimal.NewFromInt(math.MaxInt64)

// ToMinor converts a positive decimal amount into minor units. Amounts with
// more than two fractional digits, non-positive amounts and amounts that do
// not fit in an int64 are rejected with domain.ErrInvalidAmount.
func ToMinor(amount decimal.Decimal) (int64, error) {
	if !amount.IsPositive() {
		return 0, fmt.Errorf("%w: amount must be greater than zero", domain.ErrInvalidAmount)
	}
	if !amount.Equal(amount.Truncate(Scale)) {
		return 0, fmt.Errorf("%w: amount has more than %d decimal places", domain.ErrInvalidAmount, Scale)
	}
	minor := amount.Shift(Scale)
	if minor.GreaterThan(maxMinor) {
		return 0, fmt.Errorf("%w: amount is too large", domain.ErrInvalidAmount)
	}
	return minor.IntPart(), nil
}

// FromMinor renders minor units as a decimal amount.
func FromMinor(minor int64) decimal.Decimal {
	return decimal.New(minor, -Scale)
}

// Float renders minor units as a JSON-friendly float. The client formats the
// value with two decimals, so the float is only ever a display value.
func Float(minor int64) float64 {
	return FromMinor(minor).InexactFloat64()
}
