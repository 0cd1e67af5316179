package core

import (
	"errors"
	"testing"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    string
		wantErr bool
	}{
		{"plain", "12.34", "12.34", false},
		{"decimal comma", "12,34", "12.34", false},
		{"integer", "100", "100.00", false},
		{"zero is allowed", "0", "0.00", false},
		{"leading and trailing spaces", "  7.5  ", "7.50", false},
		{"three decimals round half-up", "12.345", "12.35", false},
		{"three decimals round down", "12.344", "12.34", false},
		{"empty", "", "", true},
		{"negative", "-5.00", "", true},
		{"not a number", "abc", "", true},
		{"two separators", "1.2.3", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.in)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidAmount) {
					t.Fatalf("ParseAmount(%q) error = %v, want ErrInvalidAmount", tt.in, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseAmount(%q) unexpected error: %v", tt.in, err)
			}
			if FormatAmount(got) != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.in, FormatAmount(got), tt.want)
			}
		})
	}
}

func TestCentsRoundTrip(t *testing.T) {
	for _, cents := range []int64{0, 1, 99, 100, 12345, 999999999} {
		d := CentsToAmount(cents)
		if back := AmountToCents(d); back != cents {
			t.Errorf("round trip %d -> %s -> %d", cents, d, back)
		}
	}
}
