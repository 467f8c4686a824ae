package rbac

import (
	"sort"

	"github.com/timesheet-report-api/internal/models"
)

// RoleUpdate is one role whose permission-id list must be replaced upstream.
type RoleUpdate struct {
	RoleID        int   `json:"role_id"`
	PermissionIDs []int `json:"permission_ids"`
}

// Reconcile compares each role's current permission ids against the desired
// assignment and returns the minimal list of updates: roles absent from
// desired and roles whose sets already match are skipped. Permission ids are
// deduplicated and sorted, updates are ordered by role id.
func Reconcile(roles []models.Role, desired map[int][]int) []RoleUpdate {
	var updates []RoleUpdate
	for _, role := range roles {
		want, ok := desired[role.ID]
		if !ok {
			continue
		}
		wantSet := make(map[int]struct{}, len(want))
		for _, id := range want {
			wantSet[id] = struct{}{}
		}

		current := make(map[int]struct{}, len(role.Permissions))
		for _, p := range role.Permissions {
			current[p.ID] = struct{}{}
		}

		if sameIDSet(current, wantSet) {
			continue
		}

		ids := make([]int, 0, len(wantSet))
		for id := range wantSet {
			ids = append(ids, id)
		}
		sort.Ints(ids)
		updates = append(updates, RoleUpdate{RoleID: role.ID, PermissionIDs: ids})
	}

	sort.Slice(updates, func(i, j int) bool { return updates[i].RoleID < updates[j].RoleID })
	return updates
}

func sameIDSet(a, b map[int]struct{}) bool {
	if len(a) != len(b) {
		return false
	}
	for id := range a {
		if _, ok := b[id]; !ok {
			return false
		}
	}
	return true
}
