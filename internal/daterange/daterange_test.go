package daterange_test

import (
	"math"
	"testing"
	"time"

	"github.com/timesheet-report-api/internal/daterange"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestExpandSingleDay(t *testing.T) {
	keys := daterange.Expand(day(2024, 3, 1), day(2024, 3, 1))
	if len(keys) != 1 || keys[0] != "2024-03-01" {
		t.Errorf("Expand same day = %v, want [2024-03-01]", keys)
	}
}

func TestExpandInclusiveRange(t *testing.T) {
	keys := daterange.Expand(day(2024, 2, 27), day(2024, 3, 2))
	want := []string{"2024-02-27", "2024-02-28", "2024-02-29", "2024-03-01", "2024-03-02"}
	if len(keys) != len(want) {
		t.Fatalf("Expand returned %d keys, want %d", len(keys), len(want))
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestExpandStripsTimeOfDay(t *testing.T) {
	// 20:00 on the 1st to 04:00 on the 3rd touches exactly 3 days.
	start := time.Date(2024, 3, 1, 20, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 3, 4, 0, 0, 0, time.UTC)
	keys := daterange.Expand(start, end)
	want := []string{"2024-03-01", "2024-03-02", "2024-03-03"}
	if len(keys) != 3 {
		t.Fatalf("Expand = %v, want %v", keys, want)
	}
	for i := range want {
		if keys[i] != want[i] {
			t.Errorf("keys[%d] = %q, want %q", i, keys[i], want[i])
		}
	}
}

func TestExpandInvalidRange(t *testing.T) {
	if keys := daterange.Expand(day(2024, 3, 3), day(2024, 3, 1)); keys != nil {
		t.Errorf("Expand with end < start = %v, want nil", keys)
	}
}

func TestExpandProperties(t *testing.T) {
	// For any valid start <= end: non-empty, strictly ascending,
	// duplicate-free, bounded by start and end.
	start := day(2023, 12, 25)
	for span := 0; span < 45; span++ {
		end := start.AddDate(0, 0, span)
		keys := daterange.Expand(start, end)
		if len(keys) != span+1 {
			t.Fatalf("span %d: got %d keys, want %d", span, len(keys), span+1)
		}
		if keys[0] != "2023-12-25" {
			t.Errorf("span %d: first key = %q", span, keys[0])
		}
		for i := 1; i < len(keys); i++ {
			if keys[i] <= keys[i-1] {
				t.Errorf("span %d: keys not strictly ascending at %d: %q <= %q", span, i, keys[i], keys[i-1])
			}
		}
	}
}

func TestApportion(t *testing.T) {
	tests := []struct {
		hours float64
		days  int
		want  float64
	}{
		{8, 1, 8},
		{8, 2, 4},
		{8, 3, 2.67},
		{1, 3, 0.33},
		{0, 3, 0},
		{8, 0, 0}, // defensive: empty expansion
		{8, -1, 0},
	}
	for _, tt := range tests {
		got := daterange.Apportion(tt.hours, tt.days)
		if got != tt.want {
			t.Errorf("Apportion(%v, %d) = %v, want %v", tt.hours, tt.days, got, tt.want)
		}
	}
}

func TestApportionSumsBackToTotal(t *testing.T) {
	// Apportioned hours summed across the span must equal the total within
	// rounding tolerance.
	for days := 1; days <= 14; days++ {
		for _, total := range []float64{0.5, 1, 7.5, 8, 24, 37.25} {
			per := daterange.Apportion(total, days)
			sum := per * float64(days)
			if math.Abs(sum-total) > 0.01*float64(days) {
				t.Errorf("total %v over %d days: sum %v drifts too far", total, days, sum)
			}
		}
	}
}
