package models

import (
	"encoding/json"
	"time"
)

// TimesheetStatus is the review state of a timesheet record
type TimesheetStatus string

const (
	StatusPending  TimesheetStatus = "PENDING"
	StatusApproved TimesheetStatus = "APPROVED"
	StatusRejected TimesheetStatus = "REJECTED"
)

// ValidStatuses defines allowed timesheet statuses
var ValidStatuses = map[TimesheetStatus]bool{
	StatusPending:  true,
	StatusApproved: true,
	StatusRejected: true,
}

// RawTimesheet is the wire shape of a timesheet record as returned by the
// upstream backend. Dates stay strings and the duration stays a json.Number
// so a single malformed record cannot fail decoding of the whole payload.
type RawTimesheet struct {
	ID          int         `json:"id"`
	ProjectID   int         `json:"projectId"`
	UserID      int         `json:"userId"`
	StartDate   string      `json:"start_date"`
	EndDate     string      `json:"end_date"`
	Duration    json.Number `json:"duration,omitempty"` // hours
	Description string      `json:"description"`
	Status      string      `json:"status"`
	Tags        []string    `json:"tags,omitempty"`
	Billable    bool        `json:"billable"`

	// Some backend responses embed the display names directly on the record.
	// They are the second step of the name-resolution fallback chain.
	ProjectName string `json:"project_name,omitempty"`
	UserName    string `json:"user_name,omitempty"`
}

// TimesheetRecord is a validated, parsed timesheet record
type TimesheetRecord struct {
	ID          int             `json:"id"`
	ProjectID   int             `json:"project_id"`
	UserID      int             `json:"user_id"`
	Start       time.Time       `json:"start"`
	End         time.Time       `json:"end"`
	Hours       float64         `json:"hours"`
	Description string          `json:"description"`
	Status      TimesheetStatus `json:"status"`
	Tags        []string        `json:"tags,omitempty"`
	Billable    bool            `json:"billable"`
	ProjectName string          `json:"project_name,omitempty"`
	UserName    string          `json:"user_name,omitempty"`
}
