package http

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"splitbook/internal/metrics"
	"splitbook/internal/report"
)

func (s *Server) handleExportCSV(w http.ResponseWriter, r *http.Request) {
	month, rows, _, ok := s.monthReport(w, r)
	if !ok {
		return
	}

	// Render fully before writing so a failure can still produce a clean
	// error response.
	var buf bytes.Buffer
	if err := report.WriteCSV(&buf, rows); err != nil {
		slog.ErrorContext(r.Context(), "CSV export failed", "error", err, "month", month.Label())
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}

	metrics.Exports.WithLabelValues("csv").Inc()

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.ExportFilename(month, "csv")))
	_, _ = w.Write(buf.Bytes())
}

func (s *Server) handleExportPDF(w http.ResponseWriter, r *http.Request) {
	month, rows, settlement, ok := s.monthReport(w, r)
	if !ok {
		return
	}

	doc := report.Document{
		Month:      month,
		Pair:       s.pair,
		Rows:       rows,
		Settlement: settlement,
		Currency:   s.cfg.Currency,
	}

	var buf bytes.Buffer
	if err := report.WritePDF(&buf, doc); err != nil {
		slog.ErrorContext(r.Context(), "PDF export failed", "error", err, "month", month.Label())
		http.Error(w, "Export error", http.StatusInternalServerError)
		return
	}

	metrics.Exports.WithLabelValues("pdf").Inc()

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition",
		fmt.Sprintf("attachment; filename=%q", report.ExportFilename(month, "pdf")))
	_, _ = w.Write(buf.Bytes())
}
