package tour

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		text string
		want time.Time
	}{
		{"04.02.26", time.Date(2026, 2, 4, 0, 0, 0, 0, time.UTC)},
		{"31.12.25", time.Date(2025, 12, 31, 0, 0, 0, 0, time.UTC)},
		{"", time.Time{}},
		{"not a date", time.Time{}},
		{"04.02.2026", time.Time{}}, // four-digit years are not the listing format
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			if got := ParseDate(tt.text); !got.Equal(tt.want) {
				t.Errorf("ParseDate(%q) = %v, expected %v", tt.text, got, tt.want)
			}
		})
	}
}

func TestTourBeginEnd(t *testing.T) {
	tr := Tour{BeginDate: "05.02.26", EndDate: "10.02.26"}

	if got := tr.Begin(); got != time.Date(2026, 2, 5, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected begin: %v", got)
	}
	if got := tr.End(); got != time.Date(2026, 2, 10, 0, 0, 0, 0, time.UTC) {
		t.Errorf("unexpected end: %v", got)
	}
}

func TestIsUpcoming(t *testing.T) {
	future := time.Now().AddDate(0, 0, 30)
	past := time.Now().AddDate(0, 0, -30)

	tests := []struct {
		name string
		tour Tour
		want bool
	}{
		{"future tour", Tour{EndDate: future.Format("02.01.06")}, true},
		{"past tour", Tour{EndDate: past.Format("02.01.06")}, false},
		{"unparseable date", Tour{EndDate: "soon"}, true},
		{"missing date", Tour{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.tour.IsUpcoming(); got != tt.want {
				t.Errorf("IsUpcoming() = %v, expected %v", got, tt.want)
			}
		})
	}
}

func TestDateRange(t *testing.T) {
	tr := Tour{BeginDate: "05.02.26", EndDate: "10.02.26"}
	if got := tr.DateRange(); got != "05.02.26–10.02.26" {
		t.Errorf("unexpected date range: %q", got)
	}
}
