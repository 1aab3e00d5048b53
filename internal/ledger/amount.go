package ledger

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Amounts travel as decimal strings on the wire and live as int64
// cents in the database; 12.34 = 1234. Fractions beyond two places
// are rounded half away from zero.

// ParseCents parses a signed decimal money string into cents.
// Values whose cent representation does not fit int64 are rejected.
func ParseCents(s string) (int64, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return 0, ErrInvalidAmount
	}
	v := d.Shift(2).Round(0)
	if !v.BigInt().IsInt64() {
		return 0, ErrInvalidAmount
	}
	return v.IntPart(), nil
}

// ParsePositiveCents parses a money string and requires it to be
// strictly positive.
func ParsePositiveCents(s string) (int64, error) {
	cents, err := ParseCents(s)
	if err != nil {
		return 0, err
	}
	if cents <= 0 {
		return 0, ErrInvalidAmount
	}
	return cents, nil
}

// FormatCents renders cents as a decimal string with two places.
func FormatCents(cents int64) string {
	return decimal.New(cents, -2).StringFixed(2)
}

// ratio returns num/den*100 rounded to two places, or 0 when den is 0.
func ratio(num, den int64) float64 {
	if den == 0 {
		return 0
	}
	f, _ := decimal.NewFromInt(num).
		Div(decimal.NewFromInt(den)).
		Mul(decimal.NewFromInt(100)).
		Round(2).
		Float64()
	return f
}
