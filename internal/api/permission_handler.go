package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/rbac"
	"github.com/timesheet-report-api/internal/service"
)

// PermissionHandler handles navigation and role-permission endpoints
type PermissionHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewPermissionHandler creates a new PermissionHandler
func NewPermissionHandler(services *service.Services, log zerolog.Logger) *PermissionHandler {
	return &PermissionHandler{
		services: services,
		log:      log.With().Str("handler", "permission").Logger(),
	}
}

// Navigation handles GET /v1/navigation?role=...
func (h *PermissionHandler) Navigation(c *gin.Context) {
	ctx := c.Request.Context()

	role := c.Query("role")
	if role == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "role parameter is required"})
		return
	}

	visible := h.services.Permission.Navigation(ctx, role, rbac.DefaultNavigation)
	c.JSON(http.StatusOK, gin.H{"role": role, "entries": visible})
}

// ReplacePermissions handles PUT /v1/roles/:id/permissions
func (h *PermissionHandler) ReplacePermissions(c *gin.Context) {
	ctx := c.Request.Context()

	roleID, err := strconv.Atoi(c.Param("id"))
	if err != nil || roleID < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	var req struct {
		PermissionIDs []int `json:"permission_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "permission_ids is required"})
		return
	}

	if err := h.services.Permission.ReplaceRolePermissions(ctx, roleID, req.PermissionIDs); err != nil {
		h.log.Error().Err(err).Int("role_id", roleID).Msg("Permission replace failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend write failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated", "role_id": roleID})
}

// togglePagesRequest is the grid round-trip for the permission editor: the
// current rows plus either one flag toggle on one row or a select-all on a
// flag column.
type togglePagesRequest struct {
	Pages     []rbac.PagePermission `json:"pages" binding:"required"`
	Toggle    *toggleOp             `json:"toggle,omitempty"`
	SelectAll *string               `json:"select_all,omitempty"`
}

type toggleOp struct {
	Index int    `json:"index"`
	Flag  string `json:"flag"`
}

func flagByName(name string) (rbac.Flag, bool) {
	switch name {
	case "read":
		return rbac.FlagRead, true
	case "write":
		return rbac.FlagWrite, true
	case "create":
		return rbac.FlagCreate, true
	case "delete":
		return rbac.FlagDelete, true
	}
	return 0, false
}

// TogglePages handles POST /v1/permissions/pages
func (h *PermissionHandler) TogglePages(c *gin.Context) {
	var req togglePagesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "pages is required"})
		return
	}

	switch {
	case req.Toggle != nil:
		flag, ok := flagByName(req.Toggle.Flag)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "flag must be one of: read, write, create, delete"})
			return
		}
		if req.Toggle.Index < 0 || req.Toggle.Index >= len(req.Pages) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "toggle index out of range"})
			return
		}
		req.Pages[req.Toggle.Index].Toggle(flag)

	case req.SelectAll != nil:
		flag, ok := flagByName(*req.SelectAll)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "select_all must be one of: read, write, create, delete"})
			return
		}
		rbac.SelectAll(req.Pages, flag)

	default:
		// No operation requested: repair any rows violating the invariants.
		for i := range req.Pages {
			req.Pages[i].Normalize()
		}
	}

	c.JSON(http.StatusOK, gin.H{"pages": req.Pages})
}
