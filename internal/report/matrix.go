package report

import (
	"math"
	"time"

	"github.com/timesheet-report-api/internal/daterange"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/timeutil"
)

// TimeMatrix maps a day key to an already-apportioned "HH:MM:SS" duration
// for one project.
type TimeMatrix map[string]string

// ProjectWeek is one project's row of a weekly grid.
type ProjectWeek struct {
	ProjectID   int        `json:"project_id"`
	ProjectName string     `json:"project_name"`
	Matrix      TimeMatrix `json:"matrix"`
	RowTotal    string     `json:"row_total"`
}

// WeekView is the weekly grid across all projects, with seconds-accurate
// column and grand totals.
type WeekView struct {
	Days         []string      `json:"days"`
	Projects     []ProjectWeek `json:"projects"`
	ColumnTotals TimeMatrix    `json:"column_totals"`
	GrandTotal   string        `json:"grand_total"`
}

// BuildWeekMatrix builds one project's day-key to duration mapping,
// restricted to the given week's 7 days. When two records of the same
// project land on the same day the later record overwrites the earlier one;
// summation was considered and deliberately not adopted, matching the
// observed grid behavior.
func BuildWeekMatrix(records []models.TimesheetRecord, projectID int, week []time.Time) TimeMatrix {
	inWeek := make(map[string]bool, len(week))
	for _, d := range week {
		inWeek[timeutil.DateKey(d)] = true
	}

	matrix := TimeMatrix{}
	for _, rec := range records {
		if rec.ProjectID != projectID {
			continue
		}
		days := daterange.Expand(rec.Start, rec.End)
		if len(days) == 0 {
			continue
		}
		perDaySeconds := int(math.Round(rec.Hours * 3600 / float64(len(days))))
		value := timeutil.FormatSeconds(perDaySeconds)
		for _, day := range days {
			if inWeek[day] {
				matrix[day] = value
			}
		}
	}
	return matrix
}

// RowTotal sums a project's day entries, accumulating in seconds so string
// durations never concatenate.
func RowTotal(matrix TimeMatrix) string {
	total := 0
	for _, v := range matrix {
		total += timeutil.ParseClock(v)
	}
	return timeutil.FormatSeconds(total)
}

// ColumnTotal sums one day's entries across all project matrices.
func ColumnTotal(matrices map[int]TimeMatrix, day string) string {
	total := 0
	for _, m := range matrices {
		total += timeutil.ParseClock(m[day])
	}
	return timeutil.FormatSeconds(total)
}

// GrandTotal sums every entry of every project matrix.
func GrandTotal(matrices map[int]TimeMatrix) string {
	total := 0
	for _, m := range matrices {
		for _, v := range m {
			total += timeutil.ParseClock(v)
		}
	}
	return timeutil.FormatSeconds(total)
}

// BuildWeekView assembles the full weekly grid for the given week anchor.
func BuildWeekView(records []models.TimesheetRecord, projects []models.Project, anchor time.Time) *WeekView {
	week := timeutil.WeekDates(anchor)
	days := make([]string, len(week))
	for i, d := range week {
		days[i] = timeutil.DateKey(d)
	}

	matrices := make(map[int]TimeMatrix, len(projects))
	rows := make([]ProjectWeek, 0, len(projects))
	for _, p := range projects {
		m := BuildWeekMatrix(records, p.ID, week)
		matrices[p.ID] = m
		rows = append(rows, ProjectWeek{
			ProjectID:   p.ID,
			ProjectName: p.Name,
			Matrix:      m,
			RowTotal:    RowTotal(m),
		})
	}

	columns := TimeMatrix{}
	for _, day := range days {
		columns[day] = ColumnTotal(matrices, day)
	}

	return &WeekView{
		Days:         days,
		Projects:     rows,
		ColumnTotals: columns,
		GrandTotal:   GrandTotal(matrices),
	}
}
