package report

import (
	"bytes"
	"encoding/csv"
	"testing"

	"splitbook/internal/core"
)

func TestWriteCSV(t *testing.T) {
	expenses := []core.Expense{
		{ID: 1, Date: core.NewDate(2024, 3, 5), Payer: "me", Item: "lunch, with drinks", Amount: amt("100")},
		{ID: 2, Date: core.NewDate(2024, 3, 10), Payer: "her", Item: "taxi", Amount: amt("40")},
	}
	rows, err := Rows(expenses, testPair)
	if err != nil {
		t.Fatalf("Rows: %v", err)
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse csv: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	wantHeader := []string{"Date", "Payer", "PayerName", "Item", "Amount"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	// Round trip: parsed fields match the source expenses, modulo the
	// injected PayerName column.
	if got := records[1]; got[0] != "2024-03-05" || got[1] != "me" || got[3] != "lunch, with drinks" || got[4] != "100.00" {
		t.Errorf("row 1 = %v", got)
	}
	if got := records[2]; got[0] != "2024-03-10" || got[1] != "her" || got[2] != "Rimpa" || got[4] != "40.00" {
		t.Errorf("row 2 = %v", got)
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("re-parse csv: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("empty export should still carry the header row, got %d records", len(records))
	}
}
