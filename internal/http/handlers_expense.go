package http

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"splitbook/internal/core"
	"splitbook/internal/metrics"
)

func (s *Server) handleAddExpense(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		slog.ErrorContext(r.Context(), "Parse form error", "error", err)
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	date := core.DateOf(s.now())
	if v := strings.TrimSpace(r.Form.Get("date")); v != "" {
		d, err := core.ParseDate(v)
		if err != nil {
			http.Error(w, "Invalid date", http.StatusBadRequest)
			return
		}
		date = d
	}

	amount, err := core.ParseAmount(r.Form.Get("amount"))
	if err != nil {
		http.Error(w, "Invalid amount", http.StatusBadRequest)
		return
	}

	payer := strings.TrimSpace(r.Form.Get("payer"))
	if !s.pair.Has(payer) {
		http.Error(w, "Invalid payer", http.StatusBadRequest)
		return
	}

	e := core.Expense{
		Date:   date,
		Payer:  payer,
		Item:   strings.TrimSpace(r.Form.Get("item")),
		Amount: amount,
	}

	id, err := s.store.Insert(r.Context(), e)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to save expense",
			"error", err,
			"payer", e.Payer,
			"date", e.Date.ISO())
		http.Error(w, "Error saving expense", http.StatusInternalServerError)
		return
	}

	metrics.ExpensesCreated.Inc()
	slog.InfoContext(r.Context(), "Expense created", "id", id, "payer", e.Payer)

	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func (s *Server) handleDeleteExpense(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		http.Error(w, "Invalid id", http.StatusBadRequest)
		return
	}

	deleted, err := s.store.DeleteByID(r.Context(), id)
	if err != nil {
		slog.ErrorContext(r.Context(), "Failed to delete expense", "error", err, "id", id)
		http.Error(w, "Error deleting expense", http.StatusInternalServerError)
		return
	}

	if deleted {
		metrics.ExpensesDeleted.Inc()
	} else {
		// Idempotent no-op: deleting an absent id is not an error.
		slog.InfoContext(r.Context(), "Delete for missing expense", "id", id)
	}

	http.Redirect(w, r, "/", http.StatusSeeOther)
}
