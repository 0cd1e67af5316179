// Package report turns expenses and a settlement into tabular output. The
// HTML summary view, the CSV writer and the PDF paginator all consume the
// same Row sequence so figures never diverge between views.
package report

import (
	"fmt"

	"splitbook/internal/core"
)

// Row is one formatted expense line, ready for any rendering backend.
type Row struct {
	Date      string // ISO-8601
	PayerCode string
	PayerName string
	Item      string // untruncated; backends truncate as needed
	Amount    string // two decimals, no currency symbol, no separators
}

// Rows formats expenses in caller-supplied order. A payer code outside the
// pair means the stored data no longer matches the configuration; that is
// fatal for the request, not something to paper over.
func Rows(expenses []core.Expense, pair core.Pair) ([]Row, error) {
	rows := make([]Row, 0, len(expenses))
	for _, e := range expenses {
		p, ok := pair.ByCode(e.Payer)
		if !ok {
			return nil, fmt.Errorf("expense %d: payer %q: %w", e.ID, e.Payer, core.ErrUnknownPayer)
		}
		rows = append(rows, Row{
			Date:      e.Date.ISO(),
			PayerCode: e.Payer,
			PayerName: p.Name,
			Item:      e.Item,
			Amount:    core.FormatAmount(e.Amount),
		})
	}
	return rows, nil
}

// ExportFilename names a monthly export file, e.g. shared_expenses_2024-03.csv.
func ExportFilename(m core.Month, ext string) string {
	return fmt.Sprintf("shared_expenses_%04d-%02d.%s", m.Year, m.Month, ext)
}

const (
	maxItemLen      = 40
	truncatedPrefix = 37
)

// truncateItem shortens item text for fixed-width columns: anything longer
// than 40 characters becomes the first 37 plus "...".
func truncateItem(s string) string {
	r := []rune(s)
	if len(r) <= maxItemLen {
		return s
	}
	return string(r[:truncatedPrefix]) + "..."
}
