// Package daterange expands a record's start/end span into the calendar days
// it touches and apportions the record's duration across them.
package daterange

import (
	"math"
	"time"

	"github.com/timesheet-report-api/internal/timeutil"
)

// Expand returns the ordered, duplicate-free day keys from start to end
// inclusive. Both bounds are truncated to local midnight before iterating,
// so time-of-day never shifts an entry across a day boundary. An end before
// the start yields nil.
func Expand(start, end time.Time) []string {
	from := timeutil.StartOfDay(start)
	to := timeutil.StartOfDay(end)
	if to.Before(from) {
		return nil
	}
	var keys []string
	for d := from; !d.After(to); d = d.AddDate(0, 0, 1) {
		keys = append(keys, timeutil.DateKey(d))
	}
	return keys
}

// Apportion splits totalHours evenly across days, rounded to 2 decimals.
// Zero or negative days yields 0 so an empty expansion never divides by zero.
func Apportion(totalHours float64, days int) float64 {
	if days <= 0 {
		return 0
	}
	return math.Round(totalHours/float64(days)*100) / 100
}
