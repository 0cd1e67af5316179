package core

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

type (
	// Date is a calendar date with no time component, pinned to UTC midnight.
	Date struct {
		time.Time
	}

	// Participant is one of the two people sharing expenses.
	Participant struct {
		Code string // short stable identifier used in storage and forms
		Name string // display name used in views and exports
	}

	// Pair is the ordered pair of participants. Order matters for the
	// settlement status codes: A is the first participant, B the second.
	Pair struct {
		A Participant
		B Participant
	}

	Expense struct {
		ID     int64
		Date   Date
		Payer  string // participant code
		Item   string // free text, may be empty
		Amount decimal.Decimal
	}
)

var (
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidPayer  = errors.New("invalid payer")
	ErrInvalidMonth  = errors.New("invalid month")
	ErrInvalidYear   = errors.New("invalid year")
	ErrInvalidDate   = errors.New("invalid date")

	// ErrUnknownPayer means a stored payer code has no participant mapping.
	// That is a data/config mismatch, not a user error.
	ErrUnknownPayer = errors.New("unknown payer code")
)

const dateLayout = "2006-01-02"

// NewDate creates a Date from year, month, day.
func NewDate(year, month, day int) Date {
	return Date{Time: time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)}
}

// DateOf truncates a timestamp to its calendar date.
func DateOf(t time.Time) Date {
	return NewDate(t.Year(), int(t.Month()), t.Day())
}

// ParseDate parses an ISO-8601 date string (YYYY-MM-DD).
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return Date{Time: t}, nil
}

// ISO returns the date formatted as YYYY-MM-DD.
func (d Date) ISO() string {
	return d.Format(dateLayout)
}

// ByCode looks up the participant with the given code.
func (p Pair) ByCode(code string) (Participant, bool) {
	switch code {
	case p.A.Code:
		return p.A, true
	case p.B.Code:
		return p.B, true
	}
	return Participant{}, false
}

// Has reports whether code identifies one of the two participants.
func (p Pair) Has(code string) bool {
	_, ok := p.ByCode(code)
	return ok
}

// Validate checks an expense against the participant pair before storage.
func (e Expense) Validate(pair Pair) error {
	if e.Date.IsZero() {
		return ErrInvalidDate
	}
	if !pair.Has(e.Payer) {
		return ErrInvalidPayer
	}
	if e.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	return nil
}
