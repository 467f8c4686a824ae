package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/client"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/rbac"
)

// permissionService resolves navigation visibility from a process-wide role
// cache. The cache is refreshed lazily and invalidated explicitly after any
// permission-mutating write.
type permissionService struct {
	backend client.Backend
	log     zerolog.Logger

	mu     sync.RWMutex
	roles  []models.Role
	loaded bool
}

// newPermissionService creates a new PermissionService
func newPermissionService(backend client.Backend, log zerolog.Logger) *permissionService {
	return &permissionService{
		backend: backend,
		log:     log.With().Str("service", "permission").Logger(),
	}
}

// cachedRoles returns the cached role snapshot, fetching it on a miss.
// A failed fetch yields nil and stays uncached, so navigation fails closed
// and the next call retries.
func (s *permissionService) cachedRoles(ctx context.Context) []models.Role {
	s.mu.RLock()
	if s.loaded {
		roles := s.roles
		s.mu.RUnlock()
		return roles
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loaded {
		return s.roles
	}

	roles, err := s.backend.Roles(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Role fetch failed, resolving empty permission set")
		return nil
	}
	s.roles = roles
	s.loaded = true
	s.log.Info().Int("roles", len(roles)).Msg("Role cache loaded")
	return roles
}

// Navigation returns the entries visible to the named role.
func (s *permissionService) Navigation(ctx context.Context, roleName string, entries []rbac.NavEntry) []rbac.NavEntry {
	set := rbac.Resolve(s.cachedRoles(ctx), roleName)
	return rbac.Visible(set, entries)
}

// Roles exposes the cached role snapshot.
func (s *permissionService) Roles(ctx context.Context) []models.Role {
	return s.cachedRoles(ctx)
}

// ReplaceRolePermissions reconciles the desired assignment against the cache,
// pushes only the roles that actually changed, and invalidates the cache
// after a successful write.
func (s *permissionService) ReplaceRolePermissions(ctx context.Context, roleID int, permissionIDs []int) error {
	updates := rbac.Reconcile(s.cachedRoles(ctx), map[int][]int{roleID: permissionIDs})
	if len(updates) == 0 {
		s.log.Debug().Int("role_id", roleID).Msg("Permission assignment unchanged, nothing to write")
		return nil
	}

	for _, u := range updates {
		if err := s.backend.ReplaceRolePermissions(ctx, u.RoleID, u.PermissionIDs); err != nil {
			return err
		}
		s.log.Info().Int("role_id", u.RoleID).Ints("permission_ids", u.PermissionIDs).Msg("Role permissions replaced")
	}

	s.Invalidate()
	return nil
}

// Invalidate drops the cached snapshot; the next read refetches.
func (s *permissionService) Invalidate() {
	s.mu.Lock()
	s.roles = nil
	s.loaded = false
	s.mu.Unlock()
	s.log.Debug().Msg("Role cache invalidated")
}
