package service_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/config"
	"github.com/timesheet-report-api/internal/mocks"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/rbac"
	"github.com/timesheet-report-api/internal/report"
	"github.com/timesheet-report-api/internal/service"
)

func testConfig() *config.Config {
	return &config.Config{
		Report: config.ReportConfig{DefaultPageSize: 25, MaxPageSize: 100},
	}
}

func newServices(backend *mocks.MockBackend) *service.Services {
	return service.NewServices(backend, testConfig(), zerolog.Nop())
}

func seedBackend() *mocks.MockBackend {
	backend := mocks.NewMockBackend()
	backend.ProjectList = []models.Project{{ID: 1, Name: "Apollo"}, {ID: 2, Name: "Borealis"}}
	backend.UserList = []models.User{{ID: 10, Name: "Alice"}, {ID: 11, Name: "Bob"}}
	backend.TimesheetsByProject[1] = []models.RawTimesheet{
		{ID: 1, ProjectID: 1, UserID: 10, StartDate: "2024-03-01T09:00:00Z", EndDate: "2024-03-01T17:00:00Z", Duration: json.Number("8"), Description: "feature work", Status: "APPROVED"},
		{ID: 2, ProjectID: 1, UserID: 11, StartDate: "2024-03-01T20:00:00Z", EndDate: "2024-03-03T04:00:00Z", Duration: json.Number("8"), Description: "night shift", Status: "PENDING"},
	}
	backend.TimesheetsByProject[2] = []models.RawTimesheet{
		{ID: 3, ProjectID: 2, UserID: 10, StartDate: "2024-03-02T09:00:00Z", EndDate: "2024-03-02T13:00:00Z", Duration: json.Number("4"), Description: "deploy", Status: "APPROVED"},
	}
	return backend
}

func TestReportService_Build(t *testing.T) {
	services := newServices(seedBackend())

	page, err := services.Report.Build(context.Background(), report.Filter{}, 1, 25)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	// Record 1 → 1 entry, record 2 → 3 entries, record 3 → 1 entry.
	if page.TotalEntries != 5 {
		t.Errorf("TotalEntries = %d, want 5", page.TotalEntries)
	}
	// 8 + 2.67*3 + 4 = 20.01
	if page.TotalHours != 20.01 {
		t.Errorf("TotalHours = %v, want 20.01", page.TotalHours)
	}
	if len(page.Entries) != 5 {
		t.Errorf("page holds %d entries, want 5", len(page.Entries))
	}
	for i := 1; i < len(page.Entries); i++ {
		if page.Entries[i].Date > page.Entries[i-1].Date {
			t.Fatal("entries are not date-descending")
		}
	}
}

func TestReportService_BuildIsIdempotent(t *testing.T) {
	services := newServices(seedBackend())
	ctx := context.Background()

	first, _ := services.Report.Build(ctx, report.Filter{User: "Alice"}, 1, 25)
	second, _ := services.Report.Build(ctx, report.Filter{User: "Alice"}, 1, 25)

	if first.TotalEntries != second.TotalEntries || first.TotalHours != second.TotalHours {
		t.Errorf("repeated builds differ: %+v vs %+v", first, second)
	}
}

func TestReportService_PartialFetchFailure(t *testing.T) {
	backend := seedBackend()
	backend.TimesheetErrs[1] = fmt.Errorf("connection refused")
	services := newServices(backend)

	page, err := services.Report.Build(context.Background(), report.Filter{}, 1, 25)
	if err != nil {
		t.Fatalf("Build must not fail on a partial fetch error: %v", err)
	}
	// Project 1's records are gone; project 2 still contributes.
	if page.TotalEntries != 1 {
		t.Errorf("TotalEntries = %d, want 1", page.TotalEntries)
	}
	if page.Entries[0].ProjectName != "Borealis" {
		t.Errorf("surviving entry from %q, want Borealis", page.Entries[0].ProjectName)
	}
}

func TestReportService_SkipsMalformedRecords(t *testing.T) {
	backend := seedBackend()
	backend.TimesheetsByProject[2] = append(backend.TimesheetsByProject[2],
		models.RawTimesheet{ID: 4, ProjectID: 2, UserID: 10, StartDate: "", EndDate: "2024-03-02T13:00:00Z"},
		models.RawTimesheet{ID: 5, ProjectID: 2, UserID: 10, StartDate: "2024-03-02T09:00:00Z", EndDate: "2024-03-02T13:00:00Z", Duration: json.Number("abc")},
	)
	services := newServices(backend)

	page, err := services.Report.Build(context.Background(), report.Filter{}, 1, 25)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if page.TotalEntries != 5 {
		t.Errorf("TotalEntries = %d, want 5 (malformed records excluded)", page.TotalEntries)
	}
}

func TestReportService_EmptyBackend(t *testing.T) {
	backend := mocks.NewMockBackend()
	backend.ProjectsErr = fmt.Errorf("boom")
	backend.UsersErr = fmt.Errorf("boom")
	services := newServices(backend)

	page, err := services.Report.Build(context.Background(), report.Filter{}, 1, 25)
	if err != nil {
		t.Fatalf("Build must degrade to empty, got error: %v", err)
	}
	if page.TotalEntries != 0 || page.TotalHours != 0 {
		t.Errorf("empty backend produced %+v", page)
	}
}

func TestReportService_WeekView(t *testing.T) {
	services := newServices(seedBackend())

	view, err := services.Report.WeekView(context.Background(), time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("WeekView failed: %v", err)
	}
	if len(view.Days) != 7 {
		t.Fatalf("got %d days, want 7", len(view.Days))
	}
	if len(view.Projects) != 2 {
		t.Errorf("got %d project rows, want 2", len(view.Projects))
	}
	if view.GrandTotal == "00:00:00" {
		t.Error("grand total should not be zero for seeded records")
	}
}

func TestExportService_StreamCSV(t *testing.T) {
	services := newServices(seedBackend())

	w := httptest.NewRecorder()
	err := services.Export.StreamCSV(context.Background(), w, report.Filter{Project: "Borealis"})
	if err != nil {
		t.Fatalf("StreamCSV failed: %v", err)
	}

	if ct := w.Header().Get("Content-Type"); ct != "text/csv" {
		t.Errorf("Content-Type = %q, want text/csv", ct)
	}
	if cd := w.Header().Get("Content-Disposition"); !strings.HasPrefix(cd, "attachment; filename=timesheet-report-") {
		t.Errorf("Content-Disposition = %q", cd)
	}

	lines := strings.Split(strings.TrimRight(w.Body.String(), "\n"), "\n")
	if lines[0] != "Project,User,Date,Hours,Description" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want header + 1 filtered row", len(lines))
	}
	if !strings.HasPrefix(lines[1], "Borealis,Alice,") {
		t.Errorf("row = %q", lines[1])
	}
}

func managerBackend() *mocks.MockBackend {
	backend := mocks.NewMockBackend()
	backend.RoleList = []models.Role{
		{
			ID: 1, Name: "Manager", Enabled: true,
			Permissions: []models.Permission{
				{ID: 1, Code: "project_read"},
				{ID: 2, Code: "project_write"},
			},
		},
	}
	return backend
}

func TestPermissionService_Navigation(t *testing.T) {
	services := newServices(managerBackend())

	entries := []rbac.NavEntry{
		{Name: "Dashboard"},
		{Name: "Projects", Prefix: "project_"},
		{Name: "Users", Prefix: "user_"},
	}
	visible := services.Permission.Navigation(context.Background(), "manager", entries)

	if len(visible) != 2 {
		t.Fatalf("got %d visible entries, want 2", len(visible))
	}
	if visible[0].Name != "Dashboard" || visible[1].Name != "Projects" {
		t.Errorf("visible = %+v", visible)
	}
}

func TestPermissionService_FailsClosed(t *testing.T) {
	backend := managerBackend()
	backend.RolesErr = fmt.Errorf("backend down")
	services := newServices(backend)

	visible := services.Permission.Navigation(context.Background(), "Manager", rbac.DefaultNavigation)
	for _, e := range visible {
		if e.Prefix != "" {
			t.Errorf("prefix-gated entry %q visible despite fetch failure", e.Name)
		}
	}
}

func TestPermissionService_CachesRoles(t *testing.T) {
	backend := managerBackend()
	services := newServices(backend)
	ctx := context.Background()

	services.Permission.Navigation(ctx, "Manager", rbac.DefaultNavigation)
	services.Permission.Navigation(ctx, "Manager", rbac.DefaultNavigation)
	if backend.RolesCalls != 1 {
		t.Errorf("RolesCalls = %d, want 1 (cached)", backend.RolesCalls)
	}

	services.Permission.Invalidate()
	services.Permission.Navigation(ctx, "Manager", rbac.DefaultNavigation)
	if backend.RolesCalls != 2 {
		t.Errorf("RolesCalls after invalidate = %d, want 2", backend.RolesCalls)
	}
}

func TestPermissionService_ReplaceInvalidatesCache(t *testing.T) {
	backend := managerBackend()
	services := newServices(backend)
	ctx := context.Background()

	if err := services.Permission.ReplaceRolePermissions(ctx, 1, []int{1, 2, 3}); err != nil {
		t.Fatalf("ReplaceRolePermissions failed: %v", err)
	}
	if got := backend.ReplacedPermissions[1]; len(got) != 3 {
		t.Errorf("backend received %v, want 3 ids", got)
	}

	callsBefore := backend.RolesCalls
	services.Permission.Navigation(ctx, "Manager", rbac.DefaultNavigation)
	if backend.RolesCalls != callsBefore+1 {
		t.Error("cache should have been invalidated after the write")
	}
}

func TestPermissionService_NoOpReplaceSkipsWrite(t *testing.T) {
	backend := managerBackend()
	services := newServices(backend)

	// Same set the role already owns: reconcile finds nothing to push.
	if err := services.Permission.ReplaceRolePermissions(context.Background(), 1, []int{2, 1}); err != nil {
		t.Fatalf("ReplaceRolePermissions failed: %v", err)
	}
	if backend.ReplaceCallCount != 0 {
		t.Errorf("backend write count = %d, want 0", backend.ReplaceCallCount)
	}
}

func TestTimesheetService_CreateValidates(t *testing.T) {
	backend := seedBackend()
	services := newServices(backend)
	ctx := context.Background()

	bad := &models.RawTimesheet{ProjectID: 1, UserID: 10, StartDate: "", EndDate: ""}
	errs, err := services.Timesheet.Create(ctx, bad)
	if err != nil {
		t.Fatalf("validation failure must not be a service error: %v", err)
	}
	if len(errs) == 0 {
		t.Fatal("expected validation errors")
	}
	if len(backend.CreatedTimesheets) != 0 {
		t.Error("invalid record must not reach the backend")
	}

	good := &models.RawTimesheet{ProjectID: 1, UserID: 10, StartDate: "2024-03-04T09:00:00Z", EndDate: "2024-03-04T17:00:00Z", Duration: json.Number("8")}
	errs, err = services.Timesheet.Create(ctx, good)
	if err != nil || len(errs) != 0 {
		t.Fatalf("Create failed: errs=%v err=%v", errs, err)
	}
	if len(backend.CreatedTimesheets) != 1 {
		t.Errorf("backend holds %d created records, want 1", len(backend.CreatedTimesheets))
	}
}
