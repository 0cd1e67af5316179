package http

import (
	"errors"
	"log/slog"
	"net/http"

	"splitbook/internal/core"
	"splitbook/internal/report"
)

type summaryData struct {
	Selected core.Month
	Months   []core.Month
	Rows     []report.Row

	NameA      string
	NameB      string
	TotalA     string
	TotalB     string
	GrandTotal string
	EqualShare string
	Status     string
	Message    string
	Currency   string
}

func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	month, rows, settlement, ok := s.monthReport(w, r)
	if !ok {
		return
	}

	data := summaryData{
		Selected:   month,
		Rows:       rows,
		NameA:      s.pair.A.Name,
		NameB:      s.pair.B.Name,
		TotalA:     settlement.TotalA.StringFixed(2),
		TotalB:     settlement.TotalB.StringFixed(2),
		GrandTotal: settlement.GrandTotal.StringFixed(2),
		EqualShare: settlement.EqualShare.StringFixed(2),
		Status:     string(settlement.Status),
		Message:    settlement.Message(s.pair, s.cfg.Currency),
		Currency:   s.cfg.Currency,
	}
	for m := range core.RecentMonths(s.now(), 12) {
		data.Months = append(data.Months, m)
	}

	s.render(w, r, "summary.html", data)
}

// monthReport resolves the requested month, loads its expenses and computes
// rows plus settlement. It writes the error response itself and returns
// ok=false when the request cannot proceed; summary and both exports share
// this path so their figures can never diverge.
func (s *Server) monthReport(w http.ResponseWriter, r *http.Request) (core.Month, []report.Row, core.Settlement, bool) {
	month, err := parseMonthParams(r.URL.Query(), s.now())
	if err != nil {
		switch {
		case errors.Is(err, core.ErrInvalidMonth):
			http.Error(w, "Invalid month", http.StatusBadRequest)
		case errors.Is(err, core.ErrInvalidYear):
			http.Error(w, "Invalid year", http.StatusBadRequest)
		default:
			http.Error(w, "Invalid request", http.StatusBadRequest)
		}
		return core.Month{}, nil, core.Settlement{}, false
	}

	start, end := core.WindowFor(month.Year, month.Month)
	expenses, err := s.store.ListInWindow(r.Context(), start, end)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list expenses in window",
			"error", err, "start", start.ISO(), "end", end.ISO())
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return core.Month{}, nil, core.Settlement{}, false
	}

	rows, err := report.Rows(expenses, s.pair)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to format expenses", "error", err)
		http.Error(w, "Data error", http.StatusInternalServerError)
		return core.Month{}, nil, core.Settlement{}, false
	}

	return month, rows, s.pair.Summarize(expenses), true
}
