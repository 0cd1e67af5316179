// Package storage persists expenses in SQLite.
//
// Amounts are stored as integer cents so no floating point ever touches the
// database. Dates are stored as ISO-8601 strings, which makes lexicographic
// comparison match chronological order for window queries.
package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"splitbook/internal/core"

	_ "modernc.org/sqlite" // pure Go SQLite driver, no CGO
)

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Insert stores a new expense and returns its assigned id.
func (r *SQLiteRepository) Insert(ctx context.Context, e core.Expense) (int64, error) {
	res, err := r.db.ExecContext(ctx,
		"INSERT INTO expenses (date, payer, item, amount_cents) VALUES (?, ?, ?, ?)",
		e.Date.ISO(), e.Payer, e.Item, core.AmountToCents(e.Amount),
	)
	if err != nil {
		return 0, fmt.Errorf("insert expense: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("expense id: %w", err)
	}

	slog.InfoContext(ctx, "Expense saved",
		"id", id,
		"date", e.Date.ISO(),
		"payer", e.Payer,
		"amount_cents", core.AmountToCents(e.Amount))

	return id, nil
}

// ListAll returns every expense, most recent first.
func (r *SQLiteRepository) ListAll(ctx context.Context) ([]core.Expense, error) {
	return r.list(ctx,
		"SELECT id, date, payer, item, amount_cents FROM expenses ORDER BY date DESC, id DESC")
}

// ListInWindow returns expenses with start <= date < end in ascending date
// order, as required by the summary and export views.
func (r *SQLiteRepository) ListInWindow(ctx context.Context, start, end core.Date) ([]core.Expense, error) {
	return r.list(ctx,
		"SELECT id, date, payer, item, amount_cents FROM expenses WHERE date >= ? AND date < ? ORDER BY date ASC, id ASC",
		start.ISO(), end.ISO())
}

// DeleteByID removes the expense with the given id. It returns false when no
// such row exists; callers treat that as an idempotent no-op.
func (r *SQLiteRepository) DeleteByID(ctx context.Context, id int64) (bool, error) {
	res, err := r.db.ExecContext(ctx, "DELETE FROM expenses WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("delete expense %d: %w", id, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("delete expense %d: rows affected: %w", id, err)
	}
	if n == 0 {
		return false, nil
	}

	slog.InfoContext(ctx, "Expense deleted", "id", id)
	return true, nil
}

func (r *SQLiteRepository) list(ctx context.Context, query string, args ...any) ([]core.Expense, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query expenses: %w", err)
	}
	defer rows.Close()

	var expenses []core.Expense
	for rows.Next() {
		var (
			e     core.Expense
			date  string
			item  sql.NullString
			cents int64
		)
		if err := rows.Scan(&e.ID, &date, &e.Payer, &item, &cents); err != nil {
			return nil, fmt.Errorf("scan expense: %w", err)
		}
		d, err := core.ParseDate(date)
		if err != nil {
			return nil, fmt.Errorf("expense %d: %w", e.ID, err)
		}
		e.Date = d
		e.Item = item.String
		e.Amount = core.CentsToAmount(cents)
		expenses = append(expenses, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate expenses: %w", err)
	}

	return expenses, nil
}
