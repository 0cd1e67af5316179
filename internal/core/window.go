package core

import (
	"fmt"
	"iter"
	"time"
)

// Month identifies a calendar month.
type Month struct {
	Year  int
	Month int // 1-12
}

// Label returns the month formatted as "YYYY-MM".
func (m Month) Label() string {
	return fmt.Sprintf("%04d-%02d", m.Year, m.Month)
}

// WindowFor computes the half-open date interval [start, end) covering the
// given month. end is the first day of the following month, rolling the year
// when month is 12. Expense filtering must use start <= date < end.
func WindowFor(year, month int) (start, end Date) {
	start = NewDate(year, month, 1)
	end = NewDate(year+month/12, month%12+1, 1)
	return start, end
}

// RecentMonths yields the count most recent months in reverse chronological
// order, starting from the month containing ref. The sequence is finite and
// restartable: ranging over it again starts from the beginning.
func RecentMonths(ref time.Time, count int) iter.Seq[Month] {
	return func(yield func(Month) bool) {
		y, m := ref.Year(), int(ref.Month())
		for range count {
			if !yield(Month{Year: y, Month: m}) {
				return
			}
			m--
			if m < 1 {
				m = 12
				y--
			}
		}
	}
}
