package http

import (
	"net/url"
	"strconv"
	"strings"
	"time"

	"splitbook/internal/core"
)

// Years outside this range are rejected rather than silently accepted; a
// typo like year=20244 should fail loudly.
const (
	minYear = 1970
	maxYear = 2100
)

// parseMonthParams resolves the month/year query parameters for summary and
// export requests. Absent or non-numeric values default to the month
// containing now; numeric values outside the valid range are rejected.
func parseMonthParams(q url.Values, now time.Time) (core.Month, error) {
	m := core.Month{Year: now.Year(), Month: int(now.Month())}

	if v := strings.TrimSpace(q.Get("year")); v != "" {
		if y, err := strconv.Atoi(v); err == nil {
			if y < minYear || y > maxYear {
				return core.Month{}, core.ErrInvalidYear
			}
			m.Year = y
		}
	}
	if v := strings.TrimSpace(q.Get("month")); v != "" {
		if mo, err := strconv.Atoi(v); err == nil {
			if mo < 1 || mo > 12 {
				return core.Month{}, core.ErrInvalidMonth
			}
			m.Month = mo
		}
	}

	return m, nil
}
