package core

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Status says which participant, if any, owes money to balance the period.
type Status string

const (
	StatusSettled Status = "settled"
	StatusAOwesB  Status = "a_owes_b"
	StatusBOwesA  Status = "b_owes_a"
)

// Settlement is the equal-split balance for a set of expenses. It is a pure
// function of the expense set and carries no identity of its own.
type Settlement struct {
	TotalA     decimal.Decimal
	TotalB     decimal.Decimal
	GrandTotal decimal.Decimal
	EqualShare decimal.Decimal // half the grand total, zero when nothing was spent
	Status     Status
	Owed       decimal.Decimal // always >= 0, rounded to two decimals
}

var two = decimal.NewFromInt(2)

// Summarize partitions the expenses by payer, sums each partition and
// computes the two-way equal split.
//
// Whoever paid more than half the grand total is owed the difference by the
// other participant. Exact equality always settles, even with nonzero
// totals. The owed amount is rounded half-up to two decimals.
//
// Expenses attributed to a code outside the pair are ignored here; the
// rendering layer reports those as corruption.
func (p Pair) Summarize(expenses []Expense) Settlement {
	totalA, totalB := decimal.Zero, decimal.Zero
	for _, e := range expenses {
		switch e.Payer {
		case p.A.Code:
			totalA = totalA.Add(e.Amount)
		case p.B.Code:
			totalB = totalB.Add(e.Amount)
		}
	}

	grand := totalA.Add(totalB)
	share := decimal.Zero
	if !grand.IsZero() {
		// Two-decimal inputs divided by two need at most three decimals,
		// so four digits keep the share exact for comparisons.
		share = grand.DivRound(two, 4)
	}

	s := Settlement{
		TotalA:     totalA,
		TotalB:     totalB,
		GrandTotal: grand,
		EqualShare: share,
		Status:     StatusSettled,
		Owed:       decimal.Zero,
	}
	switch {
	case totalA.GreaterThan(share):
		s.Status = StatusBOwesA
		s.Owed = totalA.Sub(share).Round(2)
	case totalB.GreaterThan(share):
		s.Status = StatusAOwesB
		s.Owed = totalB.Sub(share).Round(2)
	}
	return s
}

// Message renders the one-line settlement result shown in the summary view
// and the PDF export.
func (s Settlement) Message(p Pair, currency string) string {
	switch s.Status {
	case StatusBOwesA:
		return fmt.Sprintf("%s owes %s %s%s", p.B.Name, p.A.Name, currency, s.Owed.StringFixed(2))
	case StatusAOwesB:
		return fmt.Sprintf("%s owes %s %s%s", p.A.Name, p.B.Name, currency, s.Owed.StringFixed(2))
	default:
		return "Settled — no one owes anything."
	}
}
