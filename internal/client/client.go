// Package client talks to the upstream REST backend that owns timesheets,
// projects, users, and roles.
package client

import (
	"context"

	"github.com/timesheet-report-api/internal/models"
)

// Backend defines the read and write contracts the reporting core consumes.
type Backend interface {
	// Timesheets fetches the raw records of one project.
	Timesheets(ctx context.Context, projectID int) ([]models.RawTimesheet, error)
	// Projects fetches the project reference table.
	Projects(ctx context.Context) ([]models.Project, error)
	// Users fetches the user reference table.
	Users(ctx context.Context) ([]models.User, error)
	// Roles fetches all roles with their attached permissions.
	Roles(ctx context.Context) ([]models.Role, error)

	CreateTimesheet(ctx context.Context, rec *models.RawTimesheet) error
	UpdateTimesheet(ctx context.Context, rec *models.RawTimesheet) error
	// ReplaceRolePermissions replaces a role's permission-id list.
	ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error
}
