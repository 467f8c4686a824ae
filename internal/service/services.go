package service

import (
	"context"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/client"
	"github.com/timesheet-report-api/internal/config"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/rbac"
	"github.com/timesheet-report-api/internal/report"
	"github.com/timesheet-report-api/internal/validation"
)

// ReportService defines the interface for report aggregation
type ReportService interface {
	Build(ctx context.Context, filter report.Filter, page, pageSize int) (*report.Page, error)
	WeekView(ctx context.Context, anchor time.Time) (*report.WeekView, error)
}

// ExportService defines the interface for export operations
type ExportService interface {
	StreamCSV(ctx context.Context, w http.ResponseWriter, filter report.Filter) error
}

// PermissionService defines the interface for role and navigation resolution
type PermissionService interface {
	Navigation(ctx context.Context, roleName string, entries []rbac.NavEntry) []rbac.NavEntry
	Roles(ctx context.Context) []models.Role
	ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error
	Invalidate()
}

// TimesheetService defines the interface for timesheet writes
type TimesheetService interface {
	Create(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error)
	Update(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error)
}

// Services holds all service interfaces
type Services struct {
	Report     ReportService
	Export     ExportService
	Permission PermissionService
	Timesheet  TimesheetService
}

// NewServices creates all services
func NewServices(backend client.Backend, cfg *config.Config, log zerolog.Logger) *Services {
	reportSvc := newReportService(backend, cfg, log)
	exportSvc := newExportService(reportSvc, log)
	permissionSvc := newPermissionService(backend, log)
	timesheetSvc := newTimesheetService(backend, log)

	return &Services{
		Report:     reportSvc,
		Export:     exportSvc,
		Permission: permissionSvc,
		Timesheet:  timesheetSvc,
	}
}
