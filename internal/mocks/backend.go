package mocks

import (
	"context"
	"sync"

	"github.com/timesheet-report-api/internal/models"
)

// MockBackend is a mock implementation of client.Backend
type MockBackend struct {
	mu sync.Mutex

	ProjectList         []models.Project
	UserList            []models.User
	RoleList            []models.Role
	TimesheetsByProject map[int][]models.RawTimesheet

	ProjectsErr   error
	UsersErr      error
	RolesErr      error
	TimesheetErrs map[int]error // per-project fetch failures
	WriteErr      error

	RolesCalls          int
	TimesheetCalls      int
	CreatedTimesheets   []models.RawTimesheet
	UpdatedTimesheets   []models.RawTimesheet
	ReplacedPermissions map[int][]int
	ReplaceCallCount    int
}

func NewMockBackend() *MockBackend {
	return &MockBackend{
		TimesheetsByProject: make(map[int][]models.RawTimesheet),
		TimesheetErrs:       make(map[int]error),
		ReplacedPermissions: make(map[int][]int),
	}
}

func (m *MockBackend) Timesheets(ctx context.Context, projectID int) ([]models.RawTimesheet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TimesheetCalls++
	if err := m.TimesheetErrs[projectID]; err != nil {
		return nil, err
	}
	return m.TimesheetsByProject[projectID], nil
}

func (m *MockBackend) Projects(ctx context.Context) ([]models.Project, error) {
	if m.ProjectsErr != nil {
		return nil, m.ProjectsErr
	}
	return m.ProjectList, nil
}

func (m *MockBackend) Users(ctx context.Context) ([]models.User, error) {
	if m.UsersErr != nil {
		return nil, m.UsersErr
	}
	return m.UserList, nil
}

func (m *MockBackend) Roles(ctx context.Context) ([]models.Role, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.RolesCalls++
	if m.RolesErr != nil {
		return nil, m.RolesErr
	}
	return m.RoleList, nil
}

func (m *MockBackend) CreateTimesheet(ctx context.Context, rec *models.RawTimesheet) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CreatedTimesheets = append(m.CreatedTimesheets, *rec)
	return nil
}

func (m *MockBackend) UpdateTimesheet(ctx context.Context, rec *models.RawTimesheet) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.UpdatedTimesheets = append(m.UpdatedTimesheets, *rec)
	return nil
}

func (m *MockBackend) ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error {
	if m.WriteErr != nil {
		return m.WriteErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ReplaceCallCount++
	m.ReplacedPermissions[roleID] = permissionIDs
	return nil
}
