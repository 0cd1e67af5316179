package core

import (
	"testing"

	"github.com/shopspring/decimal"
)

var testPair = Pair{
	A: Participant{Code: "me", Name: "Soumajit"},
	B: Participant{Code: "her", Name: "Rimpa"},
}

func amt(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestSummarizeScenario(t *testing.T) {
	expenses := []Expense{
		{Date: NewDate(2024, 3, 5), Payer: "me", Item: "lunch", Amount: amt("100.00")},
		{Date: NewDate(2024, 3, 10), Payer: "her", Item: "taxi", Amount: amt("40.00")},
	}

	s := testPair.Summarize(expenses)

	if !s.TotalA.Equal(amt("100.00")) {
		t.Errorf("TotalA = %s, want 100.00", s.TotalA)
	}
	if !s.TotalB.Equal(amt("40.00")) {
		t.Errorf("TotalB = %s, want 40.00", s.TotalB)
	}
	if !s.GrandTotal.Equal(amt("140.00")) {
		t.Errorf("GrandTotal = %s, want 140.00", s.GrandTotal)
	}
	if !s.EqualShare.Equal(amt("70.00")) {
		t.Errorf("EqualShare = %s, want 70.00", s.EqualShare)
	}
	if s.Status != StatusBOwesA {
		t.Errorf("Status = %s, want %s", s.Status, StatusBOwesA)
	}
	if !s.Owed.Equal(amt("30.00")) {
		t.Errorf("Owed = %s, want 30.00", s.Owed)
	}
	if got, want := s.Message(testPair, "₹"), "Rimpa owes Soumajit ₹30.00"; got != want {
		t.Errorf("Message = %q, want %q", got, want)
	}
}

func TestSummarizeTable(t *testing.T) {
	tests := []struct {
		name       string
		expenses   []Expense
		wantStatus Status
		wantOwed   string
	}{
		{
			name:       "empty is settled with zeros",
			expenses:   nil,
			wantStatus: StatusSettled,
			wantOwed:   "0.00",
		},
		{
			name: "identical totals settle",
			expenses: []Expense{
				{Payer: "me", Amount: amt("50.00")},
				{Payer: "her", Amount: amt("50.00")},
			},
			wantStatus: StatusSettled,
			wantOwed:   "0.00",
		},
		{
			name: "a underpays",
			expenses: []Expense{
				{Payer: "me", Amount: amt("10.00")},
				{Payer: "her", Amount: amt("30.00")},
			},
			wantStatus: StatusAOwesB,
			wantOwed:   "10.00",
		},
		{
			name: "only b paid",
			expenses: []Expense{
				{Payer: "her", Amount: amt("80.50")},
			},
			wantStatus: StatusAOwesB,
			wantOwed:   "40.25",
		},
		{
			name: "half cent rounds up",
			expenses: []Expense{
				{Payer: "me", Amount: amt("0.01")},
			},
			wantStatus: StatusBOwesA,
			wantOwed:   "0.01", // owed is 0.005, half-up rounding gives 0.01
		},
		{
			name: "unknown payer codes are ignored",
			expenses: []Expense{
				{Payer: "me", Amount: amt("20.00")},
				{Payer: "them", Amount: amt("999.00")},
			},
			wantStatus: StatusBOwesA,
			wantOwed:   "10.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := testPair.Summarize(tt.expenses)
			if s.Status != tt.wantStatus {
				t.Errorf("Status = %s, want %s", s.Status, tt.wantStatus)
			}
			if got := s.Owed.StringFixed(2); got != tt.wantOwed {
				t.Errorf("Owed = %s, want %s", got, tt.wantOwed)
			}
			if !s.TotalA.Add(s.TotalB).Equal(s.GrandTotal) {
				t.Errorf("TotalA + TotalB = %s, GrandTotal = %s", s.TotalA.Add(s.TotalB), s.GrandTotal)
			}
		})
	}
}

func TestSummarizeEmptyShareIsZero(t *testing.T) {
	s := testPair.Summarize(nil)
	if !s.GrandTotal.IsZero() || !s.EqualShare.IsZero() {
		t.Errorf("GrandTotal = %s, EqualShare = %s, want both zero", s.GrandTotal, s.EqualShare)
	}
}

func TestSettlementMessage(t *testing.T) {
	tests := []struct {
		name string
		s    Settlement
		want string
	}{
		{"settled", Settlement{Status: StatusSettled}, "Settled — no one owes anything."},
		{"a owes b", Settlement{Status: StatusAOwesB, Owed: amt("12.50")}, "Soumajit owes Rimpa ₹12.50"},
		{"b owes a", Settlement{Status: StatusBOwesA, Owed: amt("0.05")}, "Rimpa owes Soumajit ₹0.05"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.s.Message(testPair, "₹"); got != tt.want {
				t.Errorf("Message = %q, want %q", got, tt.want)
			}
		})
	}
}
