package report

import (
	"math"
	"strings"
)

// Sentinel filter values meaning "no restriction on this axis".
const (
	AllProjects = "All Projects"
	AllUsers    = "All Users"
)

// Filter is the multi-axis predicate applied to a report. Axes combine with
// AND; the free-text query matches any of project name, user name, date
// string, or description (OR), case-insensitively.
type Filter struct {
	Project   string `json:"project,omitempty"`
	User      string `json:"user,omitempty"`
	StartDate string `json:"start_date,omitempty"` // YYYY-MM-DD inclusive, empty = unbounded
	EndDate   string `json:"end_date,omitempty"`   // YYYY-MM-DD inclusive, empty = unbounded
	Query     string `json:"query,omitempty"`
}

// Apply returns the entries passing every filter axis, preserving the input
// order.
func (f Filter) Apply(entries []Entry) []Entry {
	out := make([]Entry, 0, len(entries))
	for _, e := range entries {
		if f.matches(e) {
			out = append(out, e)
		}
	}
	return out
}

func (f Filter) matches(e Entry) bool {
	if f.Project != "" && f.Project != AllProjects && e.ProjectName != f.Project {
		return false
	}
	if f.User != "" && f.User != AllUsers && e.UserName != f.User {
		return false
	}
	if f.StartDate != "" && e.Date < f.StartDate {
		return false
	}
	if f.EndDate != "" && e.Date > f.EndDate {
		return false
	}
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		haystacks := [4]string{e.ProjectName, e.UserName, e.Date, e.Description}
		hit := false
		for _, h := range haystacks {
			if strings.Contains(strings.ToLower(h), q) {
				hit = true
				break
			}
		}
		if !hit {
			return false
		}
	}
	return true
}

// TotalHours sums worked hours over entries, rounded to 2 decimals. The
// summary is computed over the filtered set, not the current page.
func TotalHours(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Hours
	}
	return math.Round(sum*100) / 100
}
