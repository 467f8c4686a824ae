// Package timeutil provides duration and calendar-date conversions used by
// the report aggregation pipeline.
package timeutil

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ParseClock converts an "HH:MM:SS" string to seconds. Empty input yields
// zero; each component is parsed independently and absent or unparseable
// components count as zero.
func ParseClock(s string) int {
	if s == "" {
		return 0
	}
	multipliers := [3]int{3600, 60, 1}
	parts := strings.Split(s, ":")
	seconds := 0
	for i := 0; i < len(parts) && i < 3; i++ {
		n, err := strconv.Atoi(strings.TrimSpace(parts[i]))
		if err != nil {
			continue
		}
		seconds += n * multipliers[i]
	}
	return seconds
}

// FormatSeconds formats non-negative seconds as zero-padded "HH:MM:SS".
func FormatSeconds(seconds int) string {
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%02d:%02d:%02d", h, m, s)
}

// ClockDuration returns the elapsed time between two "HH:MM" clock times as
// "HH:MM:00". An end earlier than the start is taken to cross midnight, so
// the result is always non-negative and at most 24h.
func ClockDuration(start, end string) string {
	s := ParseClock(start)
	e := ParseClock(end)
	if e < s {
		e += 24 * 3600
	}
	return FormatSeconds(e - s)
}

// DateKey formats t as "YYYY-MM-DD" from its local calendar fields. The key
// is never derived from a UTC-shifted representation: near midnight in a
// non-UTC zone that would land the entry on the wrong day.
func DateKey(t time.Time) string {
	return fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day())
}

// ParseDateKey parses a "YYYY-MM-DD" key as local midnight in loc.
// A nil loc means time.Local.
func ParseDateKey(key string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.Local
	}
	return time.ParseInLocation("2006-01-02", key, loc)
}

// StartOfDay returns 00:00:00 of the same day in the same location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// WeekDates returns the 7 consecutive days of the week containing anchor,
// starting on Monday, each at local midnight.
func WeekDates(anchor time.Time) []time.Time {
	wd := int(anchor.Weekday())
	if wd == 0 {
		wd = 7 // Sunday belongs to the preceding Monday's week
	}
	monday := StartOfDay(anchor.AddDate(0, 0, -(wd - 1)))
	days := make([]time.Time, 7)
	for i := range days {
		days[i] = monday.AddDate(0, 0, i)
	}
	return days
}
