package http

import (
	"errors"
	"net/url"
	"testing"
	"time"

	"splitbook/internal/core"
)

func TestParseMonthParams(t *testing.T) {
	now := time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		query   url.Values
		want    core.Month
		wantErr error
	}{
		{"both provided", url.Values{"year": {"2023"}, "month": {"12"}}, core.Month{Year: 2023, Month: 12}, nil},
		{"empty defaults to now", url.Values{}, core.Month{Year: 2024, Month: 3}, nil},
		{"only year", url.Values{"year": {"2022"}}, core.Month{Year: 2022, Month: 3}, nil},
		{"only month", url.Values{"month": {"7"}}, core.Month{Year: 2024, Month: 7}, nil},
		{"non-numeric defaults", url.Values{"year": {"20x4"}, "month": {"abc"}}, core.Month{Year: 2024, Month: 3}, nil},
		{"month too large", url.Values{"month": {"13"}}, core.Month{}, core.ErrInvalidMonth},
		{"month zero", url.Values{"month": {"0"}}, core.Month{}, core.ErrInvalidMonth},
		{"negative month", url.Values{"month": {"-2"}}, core.Month{}, core.ErrInvalidMonth},
		{"year before range", url.Values{"year": {"1969"}}, core.Month{}, core.ErrInvalidYear},
		{"year after range", url.Values{"year": {"2101"}}, core.Month{}, core.ErrInvalidYear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseMonthParams(tt.query, now)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("month = %v, want %v", got, tt.want)
			}
		})
	}
}
