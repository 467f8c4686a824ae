// Package validation checks wire-format timesheet records before they enter
// aggregation. A malformed record is excluded from the pass, never a reason
// to abort it.
package validation

import (
	"fmt"
	"time"

	"github.com/timesheet-report-api/internal/models"
)

// ValidationError represents a single validation error
type ValidationError struct {
	Field   string      `json:"field"`
	Message string      `json:"message"`
	Value   interface{} `json:"value,omitempty"`
}

// Timestamp layouts accepted from the backend. Zone-less layouts are read in
// local time, matching how day keys are derived.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// ValidateTimesheet validates a wire record
func ValidateTimesheet(raw *models.RawTimesheet) []ValidationError {
	var errors []ValidationError

	var start, end time.Time
	var startErr, endErr error

	if raw.StartDate == "" {
		errors = append(errors, ValidationError{Field: "start_date", Message: "start_date is required"})
	} else if start, startErr = parseTimestamp(raw.StartDate); startErr != nil {
		errors = append(errors, ValidationError{Field: "start_date", Message: "invalid ISO 8601 date format", Value: raw.StartDate})
	}

	if raw.EndDate == "" {
		errors = append(errors, ValidationError{Field: "end_date", Message: "end_date is required"})
	} else if end, endErr = parseTimestamp(raw.EndDate); endErr != nil {
		errors = append(errors, ValidationError{Field: "end_date", Message: "invalid ISO 8601 date format", Value: raw.EndDate})
	}

	if startErr == nil && endErr == nil && raw.StartDate != "" && raw.EndDate != "" && end.Before(start) {
		errors = append(errors, ValidationError{Field: "end_date", Message: "end_date must not precede start_date", Value: raw.EndDate})
	}

	if raw.Duration != "" {
		hours, err := raw.Duration.Float64()
		if err != nil {
			errors = append(errors, ValidationError{Field: "duration", Message: "duration must be numeric", Value: raw.Duration.String()})
		} else if hours < 0 {
			errors = append(errors, ValidationError{Field: "duration", Message: "duration must be non-negative", Value: raw.Duration.String()})
		}
	}

	if raw.Status != "" && !models.ValidStatuses[models.TimesheetStatus(raw.Status)] {
		errors = append(errors, ValidationError{
			Field:   "status",
			Message: "invalid status, must be one of: PENDING, APPROVED, REJECTED",
			Value:   raw.Status,
		})
	}

	return errors
}

// Convert parses a wire record into a domain record. A record failing
// validation is rejected with its errors. An absent duration is computed as
// end minus start.
func Convert(raw *models.RawTimesheet) (*models.TimesheetRecord, []ValidationError) {
	if errors := ValidateTimesheet(raw); len(errors) > 0 {
		return nil, errors
	}

	start, _ := parseTimestamp(raw.StartDate)
	end, _ := parseTimestamp(raw.EndDate)

	var hours float64
	if raw.Duration != "" {
		hours, _ = raw.Duration.Float64()
	} else {
		hours = end.Sub(start).Hours()
	}

	status := models.TimesheetStatus(raw.Status)
	if raw.Status == "" {
		status = models.StatusPending
	}

	return &models.TimesheetRecord{
		ID:          raw.ID,
		ProjectID:   raw.ProjectID,
		UserID:      raw.UserID,
		Start:       start,
		End:         end,
		Hours:       hours,
		Description: raw.Description,
		Status:      status,
		Tags:        raw.Tags,
		Billable:    raw.Billable,
		ProjectName: raw.ProjectName,
		UserName:    raw.UserName,
	}, nil
}
