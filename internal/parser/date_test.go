package parser

import (
	"testing"
	"time"
)

func TestNormalizeDate(t *testing.T) {
	tests := []struct {
		input   string
		display string
		posted  time.Time
		wantErr bool
	}{
		{"01/15/24", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"01/15/2024", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"1/5/24", "1/5/2024", time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC), false},
		{"12/31/23", "12/31/2023", time.Date(2023, 12, 31, 0, 0, 0, 0, time.UTC), false},
		// stray characters inside segments get stripped
		{"01./15/24", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		// digits-only encodings
		{"01152024", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"011524", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		{"01-15-24", "01/15/2024", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC), false},
		// rejected
		{"0115", "", time.Time{}, true},
		{"011520244", "", time.Time{}, true},
		{"01/15", "", time.Time{}, true},
		{"13/15/24", "", time.Time{}, true},
		{"00/15/24", "", time.Time{}, true},
		{"01/32/24", "", time.Time{}, true},
		{"01/00/24", "", time.Time{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			display, posted, err := normalizeDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error, got %q", display)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if display != tt.display {
				t.Errorf("display: got %q, want %q", display, tt.display)
			}
			if !posted.Equal(tt.posted) {
				t.Errorf("posted: got %v, want %v", posted, tt.posted)
			}
		})
	}
}

func TestNormalizeDate_CenturyExpansion(t *testing.T) {
	// two-digit years always land in the 2000s
	for _, input := range []string{"06/01/09", "060109"} {
		_, posted, err := normalizeDate(input)
		if err != nil {
			t.Fatalf("unexpected error for %q: %v", input, err)
		}
		if posted.Year() != 2009 {
			t.Errorf("%q: year got %d, want 2009", input, posted.Year())
		}
	}
}
