package report

import (
	"fmt"
	"io"

	"github.com/go-pdf/fpdf"
	"github.com/shopspring/decimal"

	"splitbook/internal/core"
)

// Document bundles everything the PDF export needs. Rows and Settlement are
// the same values the HTML and CSV views consume.
type Document struct {
	Month      core.Month
	Pair       core.Pair
	Rows       []Row
	Settlement core.Settlement
	Currency   string
}

// Page geometry in millimeters, A4 portrait.
const (
	pdfMargin     = 20.0
	pdfLineStep   = 6.0
	pdfBottomSafe = 30.0 // start a new page when the cursor enters this band
)

// Column x-offsets from the left margin: date, payer, item, amount anchor.
var pdfColOffsets = [4]float64{0, 40, 80, 150}

// WritePDF renders a paginated expense table. The header band (title,
// per-payer totals, equal share, column headings, rule) is drawn once at the
// top of page 1; subsequent pages carry rows only, resuming at the top
// margin. A one-line settlement result follows the last row, subject to the
// same page-break rule as the rows.
func WritePDF(w io.Writer, doc Document) error {
	pdf := fpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.SetAutoPageBreak(false, 0)
	pdf.AddPage()

	pageW, pageH := pdf.GetPageSize()
	x := pdfMargin
	y := pdfMargin
	breakLimit := pageH - pdfMargin - pdfBottomSafe

	colX := [4]float64{}
	for i, off := range pdfColOffsets {
		colX[i] = x + off
	}
	amountRight := colX[3] + 30

	money := func(d decimal.Decimal) string {
		return doc.Currency + d.StringFixed(2)
	}

	// Header band, page 1 only.
	pdf.SetFont("Helvetica", "B", 14)
	pdf.Text(x, y, tr(fmt.Sprintf("Shared Expenses — %s", doc.Month.Label())))
	y += 8

	pdf.SetFont("Helvetica", "", 11)
	pdf.Text(x, y, tr(fmt.Sprintf("%s paid: %s", doc.Pair.A.Name, money(doc.Settlement.TotalA))))
	y += pdfLineStep
	pdf.Text(x, y, tr(fmt.Sprintf("%s paid: %s", doc.Pair.B.Name, money(doc.Settlement.TotalB))))
	y += pdfLineStep
	pdf.Text(x, y, tr(fmt.Sprintf("Total: %s    Equal share: %s",
		money(doc.Settlement.GrandTotal), money(doc.Settlement.EqualShare))))
	y += 10

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Text(x, y, "Expenses:")
	y += pdfLineStep

	pdf.SetFont("Helvetica", "", 10)
	for i, h := range []string{"Date", "Payer", "Item", "Amount"} {
		pdf.Text(colX[i], y, h)
	}
	y += 5
	pdf.Line(x, y, pageW-pdfMargin, y)
	y += pdfLineStep

	newPage := func() {
		pdf.AddPage()
		y = pdfMargin
	}

	for _, r := range doc.Rows {
		if y > breakLimit {
			newPage()
		}
		pdf.Text(colX[0], y, r.Date)
		pdf.Text(colX[1], y, tr(r.PayerName))
		pdf.Text(colX[2], y, tr(truncateItem(r.Item)))
		amount := tr(doc.Currency + r.Amount)
		pdf.Text(amountRight-pdf.GetStringWidth(amount), y, amount)
		y += pdfLineStep
	}

	y += 8
	if y > breakLimit {
		newPage()
	}
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Text(x, y, tr("Result: "+doc.Settlement.Message(doc.Pair, doc.Currency)))

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render pdf: %w", err)
	}
	return nil
}
