package mocks

import (
	"context"
	"net/http"
	"time"

	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/rbac"
	"github.com/timesheet-report-api/internal/report"
	"github.com/timesheet-report-api/internal/validation"
)

// MockReportService is a mock implementation of service.ReportService
type MockReportService struct {
	FixedPage  *report.Page
	FixedWeek  *report.WeekView
	BuildErr   error
	LastFilter report.Filter
	LastPage   int
	LastSize   int
}

func NewMockReportService() *MockReportService {
	return &MockReportService{}
}

func (m *MockReportService) Build(ctx context.Context, filter report.Filter, page, pageSize int) (*report.Page, error) {
	m.LastFilter = filter
	m.LastPage = page
	m.LastSize = pageSize
	if m.BuildErr != nil {
		return nil, m.BuildErr
	}
	if m.FixedPage != nil {
		return m.FixedPage, nil
	}
	return &report.Page{Entries: []report.Entry{}, Page: page, PageSize: pageSize}, nil
}

func (m *MockReportService) WeekView(ctx context.Context, anchor time.Time) (*report.WeekView, error) {
	if m.BuildErr != nil {
		return nil, m.BuildErr
	}
	if m.FixedWeek != nil {
		return m.FixedWeek, nil
	}
	return &report.WeekView{}, nil
}

// MockExportService is a mock implementation of service.ExportService
type MockExportService struct {
	Body       string
	StreamErr  error
	LastFilter report.Filter
}

func NewMockExportService() *MockExportService {
	return &MockExportService{Body: "Project,User,Date,Hours,Description\n"}
}

func (m *MockExportService) StreamCSV(ctx context.Context, w http.ResponseWriter, filter report.Filter) error {
	m.LastFilter = filter
	if m.StreamErr != nil {
		return m.StreamErr
	}
	w.Header().Set("Content-Type", "text/csv")
	_, err := w.Write([]byte(m.Body))
	return err
}

// MockPermissionService is a mock implementation of service.PermissionService
type MockPermissionService struct {
	RoleList        []models.Role
	Visible         []rbac.NavEntry
	ReplaceErr      error
	Replaced        map[int][]int
	InvalidateCalls int
}

func NewMockPermissionService() *MockPermissionService {
	return &MockPermissionService{Replaced: make(map[int][]int)}
}

func (m *MockPermissionService) Navigation(ctx context.Context, roleName string, entries []rbac.NavEntry) []rbac.NavEntry {
	if m.Visible != nil {
		return m.Visible
	}
	return rbac.Visible(rbac.Resolve(m.RoleList, roleName), entries)
}

func (m *MockPermissionService) Roles(ctx context.Context) []models.Role {
	return m.RoleList
}

func (m *MockPermissionService) ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error {
	if m.ReplaceErr != nil {
		return m.ReplaceErr
	}
	m.Replaced[roleID] = permissionIDs
	return nil
}

func (m *MockPermissionService) Invalidate() {
	m.InvalidateCalls++
}

// MockTimesheetService is a mock implementation of service.TimesheetService
type MockTimesheetService struct {
	Errors   []validation.ValidationError
	WriteErr error
	Created  []models.RawTimesheet
	Updated  []models.RawTimesheet
}

func NewMockTimesheetService() *MockTimesheetService {
	return &MockTimesheetService{}
}

func (m *MockTimesheetService) Create(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error) {
	if m.WriteErr != nil {
		return nil, m.WriteErr
	}
	if len(m.Errors) > 0 {
		return m.Errors, nil
	}
	m.Created = append(m.Created, *raw)
	return nil, nil
}

func (m *MockTimesheetService) Update(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error) {
	if m.WriteErr != nil {
		return nil, m.WriteErr
	}
	if len(m.Errors) > 0 {
		return m.Errors, nil
	}
	m.Updated = append(m.Updated, *raw)
	return nil, nil
}
