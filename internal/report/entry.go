// Package report folds timesheet records into the report views served by the
// API: a flat per-day entry list and a per-project weekly time matrix.
package report

import (
	"sort"

	"github.com/timesheet-report-api/internal/daterange"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/timeutil"
)

// Names used when a record's project or user cannot be resolved.
const (
	UnknownProject = "Unknown Project"
	UnknownUser    = "Unknown User"
)

// Entry is one (record, calendar day) pair of a report. Regenerated on every
// aggregation pass, never stored.
type Entry struct {
	ProjectID   int     `json:"project_id"`
	ProjectName string  `json:"project_name"`
	UserID      int     `json:"user_id"`
	UserName    string  `json:"user_name"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Hours       float64 `json:"worked_hours"`
	Description string  `json:"description"`
}

// firstNonEmpty evaluates lookups in order and returns the first non-empty
// result.
func firstNonEmpty(lookups ...func() string) string {
	for _, lookup := range lookups {
		if v := lookup(); v != "" {
			return v
		}
	}
	return ""
}

// BuildEntries expands every record into per-day entries with evenly
// apportioned hours and resolves display names against the reference tables.
// The result is sorted by date descending, the canonical report order.
func BuildEntries(records []models.TimesheetRecord, projects []models.Project, users []models.User) []Entry {
	projectNames := make(map[int]string, len(projects))
	for _, p := range projects {
		projectNames[p.ID] = p.Name
	}
	userNames := make(map[int]string, len(users))
	for _, u := range users {
		userNames[u.ID] = u.Name
	}

	entries := make([]Entry, 0, len(records))
	for _, rec := range records {
		rec := rec
		projectName := firstNonEmpty(
			func() string { return projectNames[rec.ProjectID] },
			func() string { return rec.ProjectName },
			func() string { return UnknownProject },
		)
		userName := firstNonEmpty(
			func() string { return userNames[rec.UserID] },
			func() string { return rec.UserName },
			func() string { return UnknownUser },
		)

		days := daterange.Expand(rec.Start, rec.End)
		hours := daterange.Apportion(rec.Hours, len(days))
		for _, day := range days {
			entries = append(entries, Entry{
				ProjectID:   rec.ProjectID,
				ProjectName: projectName,
				UserID:      rec.UserID,
				UserName:    userName,
				Date:        day,
				Hours:       hours,
				Description: rec.Description,
			})
		}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date > entries[j].Date
	})
	return entries
}

// DisplayDate renders a day key for export, e.g. "01 Mar 2024". Keys that do
// not parse are passed through unchanged.
func DisplayDate(key string) string {
	t, err := timeutil.ParseDateKey(key, nil)
	if err != nil {
		return key
	}
	return t.Format("02 Jan 2006")
}
