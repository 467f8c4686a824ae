package rbac

import (
	"strings"

	"github.com/timesheet-report-api/internal/models"
)

// Set is a resolved flat set of permission codes.
type Set map[string]struct{}

// Resolve unions the permission codes of every enabled role whose name
// matches roleName case-insensitively. No match yields an empty set, which
// hides every prefix-gated entry.
func Resolve(roles []models.Role, roleName string) Set {
	set := Set{}
	for _, role := range roles {
		if !role.Enabled || !strings.EqualFold(role.Name, roleName) {
			continue
		}
		for _, p := range role.Permissions {
			if p.Code != "" {
				set[p.Code] = struct{}{}
			}
		}
	}
	return set
}

// Has reports exact membership of a code.
func (s Set) Has(code string) bool {
	_, ok := s[code]
	return ok
}

// HasPrefix reports whether any code in the set starts with prefix. An empty
// prefix always matches: entries without a prefix tag are always visible.
func (s Set) HasPrefix(prefix string) bool {
	if prefix == "" {
		return true
	}
	for code := range s {
		if strings.HasPrefix(code, prefix) {
			return true
		}
	}
	return false
}

// NavEntry is a navigation item optionally gated by a capability prefix.
type NavEntry struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	Prefix string `json:"prefix,omitempty"`
}

// DefaultNavigation is the dashboard's navigation tree.
var DefaultNavigation = []NavEntry{
	{Name: "Dashboard", Path: "/"},
	{Name: "Projects", Path: "/projects", Prefix: "project_"},
	{Name: "Timesheets", Path: "/timesheets", Prefix: "timesheet_"},
	{Name: "Reports", Path: "/reports", Prefix: "report_"},
	{Name: "Users", Path: "/users", Prefix: "user_"},
	{Name: "Roles", Path: "/roles", Prefix: "role_"},
}

// Visible filters entries down to those the permission set can see.
func Visible(set Set, entries []NavEntry) []NavEntry {
	out := make([]NavEntry, 0, len(entries))
	for _, e := range entries {
		if set.HasPrefix(e.Prefix) {
			out = append(out, e)
		}
	}
	return out
}
