package report_test

import (
	"math"
	"testing"
	"time"

	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/report"
)

var (
	testProjects = []models.Project{
		{ID: 1, Name: "Apollo"},
		{ID: 2, Name: "Borealis"},
	}
	testUsers = []models.User{
		{ID: 10, Name: "Alice"},
		{ID: 11, Name: "Bob"},
	}
)

func rec(id, projectID, userID int, start, end time.Time, hours float64, desc string) models.TimesheetRecord {
	return models.TimesheetRecord{
		ID:          id,
		ProjectID:   projectID,
		UserID:      userID,
		Start:       start,
		End:         end,
		Hours:       hours,
		Description: desc,
		Status:      models.StatusApproved,
	}
}

func at(y int, m time.Month, d, h int) time.Time {
	return time.Date(y, m, d, h, 0, 0, 0, time.UTC)
}

func TestBuildEntriesMultiDaySpan(t *testing.T) {
	records := []models.TimesheetRecord{
		rec(1, 1, 10, at(2024, 3, 1, 20), at(2024, 3, 3, 4), 8, "night shift"),
	}
	entries := report.BuildEntries(records, testProjects, testUsers)

	if len(entries) != 3 {
		t.Fatalf("got %d entries, want 3", len(entries))
	}
	// Canonical order is date descending.
	wantDates := []string{"2024-03-03", "2024-03-02", "2024-03-01"}
	var sum float64
	for i, e := range entries {
		if e.Date != wantDates[i] {
			t.Errorf("entries[%d].Date = %q, want %q", i, e.Date, wantDates[i])
		}
		if e.Hours != 2.67 {
			t.Errorf("entries[%d].Hours = %v, want 2.67", i, e.Hours)
		}
		if e.ProjectName != "Apollo" || e.UserName != "Alice" {
			t.Errorf("entries[%d] resolved names = %q/%q", i, e.ProjectName, e.UserName)
		}
		sum += e.Hours
	}
	if math.Abs(sum-8) > 0.01 {
		t.Errorf("apportioned sum = %v, want 8 within 0.01", sum)
	}
}

func TestBuildEntriesNameFallbackChain(t *testing.T) {
	embedded := rec(2, 99, 10, at(2024, 3, 4, 9), at(2024, 3, 4, 17), 8, "")
	embedded.ProjectName = "Legacy CRM"
	unknown := rec(3, 98, 97, at(2024, 3, 4, 9), at(2024, 3, 4, 17), 8, "")

	entries := report.BuildEntries([]models.TimesheetRecord{embedded, unknown}, testProjects, testUsers)
	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	byID := map[int]report.Entry{}
	for _, e := range entries {
		byID[e.ProjectID] = e
	}
	if byID[99].ProjectName != "Legacy CRM" {
		t.Errorf("embedded name not used: got %q", byID[99].ProjectName)
	}
	if byID[98].ProjectName != report.UnknownProject {
		t.Errorf("missing project resolved to %q, want %q", byID[98].ProjectName, report.UnknownProject)
	}
	if byID[98].UserName != report.UnknownUser {
		t.Errorf("missing user resolved to %q, want %q", byID[98].UserName, report.UnknownUser)
	}
}

func TestBuildEntriesEmptyInputs(t *testing.T) {
	entries := report.BuildEntries(nil, nil, nil)
	if len(entries) != 0 {
		t.Errorf("empty inputs produced %d entries", len(entries))
	}
}

func TestBuildWeekMatrix(t *testing.T) {
	week := weekOf(t, 2024, 3, 1) // Mon 2024-02-26 .. Sun 2024-03-03
	records := []models.TimesheetRecord{
		rec(1, 1, 10, at(2024, 2, 27, 9), at(2024, 2, 27, 17), 8, ""),
		rec(2, 1, 10, at(2024, 3, 1, 9), at(2024, 3, 2, 17), 6, ""),
		rec(3, 2, 11, at(2024, 2, 28, 9), at(2024, 2, 28, 13), 4, ""), // other project
		rec(4, 1, 10, at(2024, 3, 10, 9), at(2024, 3, 10, 17), 8, ""), // outside week
	}

	m := report.BuildWeekMatrix(records, 1, week)
	if got := m["2024-02-27"]; got != "08:00:00" {
		t.Errorf("Tue = %q, want 08:00:00", got)
	}
	if got := m["2024-03-01"]; got != "03:00:00" {
		t.Errorf("Fri = %q, want 03:00:00 (6h over 2 days)", got)
	}
	if got := m["2024-03-02"]; got != "03:00:00" {
		t.Errorf("Sat = %q, want 03:00:00", got)
	}
	if _, ok := m["2024-03-10"]; ok {
		t.Error("entry outside the week must not appear")
	}
	if _, ok := m["2024-02-28"]; ok {
		t.Error("other project's entry must not appear")
	}
}

func TestBuildWeekMatrixLastWriteWins(t *testing.T) {
	week := weekOf(t, 2024, 3, 1)
	records := []models.TimesheetRecord{
		rec(1, 1, 10, at(2024, 2, 27, 9), at(2024, 2, 27, 12), 3, ""),
		rec(2, 1, 10, at(2024, 2, 27, 13), at(2024, 2, 27, 18), 5, ""),
	}
	m := report.BuildWeekMatrix(records, 1, week)
	// Same project and day: the later record overwrites, it does not sum.
	if got := m["2024-02-27"]; got != "05:00:00" {
		t.Errorf("duplicate day = %q, want 05:00:00 (last write wins)", got)
	}
}

func TestTotals(t *testing.T) {
	matrices := map[int]report.TimeMatrix{
		1: {"2024-02-26": "08:00:00", "2024-02-27": "04:30:00"},
		2: {"2024-02-26": "02:15:00"},
	}
	if got := report.RowTotal(matrices[1]); got != "12:30:00" {
		t.Errorf("RowTotal = %q, want 12:30:00", got)
	}
	if got := report.ColumnTotal(matrices, "2024-02-26"); got != "10:15:00" {
		t.Errorf("ColumnTotal = %q, want 10:15:00", got)
	}
	if got := report.GrandTotal(matrices); got != "14:45:00" {
		t.Errorf("GrandTotal = %q, want 14:45:00", got)
	}
}

func TestBuildWeekView(t *testing.T) {
	records := []models.TimesheetRecord{
		rec(1, 1, 10, at(2024, 2, 27, 9), at(2024, 2, 27, 17), 8, ""),
		rec(2, 2, 11, at(2024, 2, 27, 9), at(2024, 2, 27, 13), 4, ""),
	}
	view := report.BuildWeekView(records, testProjects, at(2024, 3, 1, 12))

	if len(view.Days) != 7 || view.Days[0] != "2024-02-26" {
		t.Fatalf("week days = %v", view.Days)
	}
	if len(view.Projects) != 2 {
		t.Fatalf("got %d project rows, want 2", len(view.Projects))
	}
	if view.ColumnTotals["2024-02-27"] != "12:00:00" {
		t.Errorf("column total = %q, want 12:00:00", view.ColumnTotals["2024-02-27"])
	}
	if view.GrandTotal != "12:00:00" {
		t.Errorf("grand total = %q, want 12:00:00", view.GrandTotal)
	}
}

func weekOf(t *testing.T, y int, m time.Month, d int) []time.Time {
	t.Helper()
	anchor := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	wd := int(anchor.Weekday())
	if wd == 0 {
		wd = 7
	}
	monday := anchor.AddDate(0, 0, -(wd - 1))
	week := make([]time.Time, 7)
	for i := range week {
		week[i] = monday.AddDate(0, 0, i)
	}
	return week
}
