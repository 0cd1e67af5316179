package http

import (
	"log/slog"
	"net/http"

	"splitbook/internal/report"
)

// indexRow is a display row plus the id the delete form needs.
type indexRow struct {
	ID int64
	report.Row
}

type indexData struct {
	Rows     []indexRow
	PayerA   string // codes for the add-form radio buttons
	PayerB   string
	NameA    string
	NameB    string
	Currency string
	Today    string
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	expenses, err := s.store.ListAll(r.Context())
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to list expenses", "error", err)
		http.Error(w, "Storage error", http.StatusInternalServerError)
		return
	}

	rows, err := report.Rows(expenses, s.pair)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to format expenses", "error", err)
		http.Error(w, "Data error", http.StatusInternalServerError)
		return
	}

	data := indexData{
		Rows:     make([]indexRow, len(rows)),
		PayerA:   s.pair.A.Code,
		PayerB:   s.pair.B.Code,
		NameA:    s.pair.A.Name,
		NameB:    s.pair.B.Name,
		Currency: s.cfg.Currency,
		Today:    s.now().Format("2006-01-02"),
	}
	for i := range rows {
		data.Rows[i] = indexRow{ID: expenses[i].ID, Row: rows[i]}
	}

	s.render(w, r, "index.html", data)
}

func (s *Server) render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := s.templates.ExecuteTemplate(w, name, data); err != nil {
		slog.ErrorContext(r.Context(), "Template render failed", "template", name, "error", err)
	}
}
