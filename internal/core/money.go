// Package core holds the domain model: dates, money, month windows and the
// settlement calculation. It has no knowledge of HTTP, storage or rendering.
//
// All monetary values are decimal (github.com/shopspring/decimal), never
// binary floats. Display rounding is half-up: decimal's Round rounds half
// away from zero, which is identical to half-up for non-negative money.
package core

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount parses a monetary amount from user input.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Values
// with more than two decimals are rounded half-up to two. Negative values
// are rejected; zero is allowed.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d.Round(2), nil
}

// FormatAmount renders an amount with exactly two decimal places, no
// currency symbol and no thousands separators.
func FormatAmount(d decimal.Decimal) string {
	return d.StringFixed(2)
}

// CentsToAmount converts a stored integer cent count to a decimal amount.
func CentsToAmount(cents int64) decimal.Decimal {
	return decimal.New(cents, -2)
}

// AmountToCents converts a two-decimal amount to integer cents for storage.
func AmountToCents(d decimal.Decimal) int64 {
	return d.Round(2).Shift(2).IntPart()
}
