package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/service"
)

// TimesheetHandler handles timesheet write endpoints
type TimesheetHandler struct {
	services *service.Services
	log      zerolog.Logger
}

// NewTimesheetHandler creates a new TimesheetHandler
func NewTimesheetHandler(services *service.Services, log zerolog.Logger) *TimesheetHandler {
	return &TimesheetHandler{
		services: services,
		log:      log.With().Str("handler", "timesheet").Logger(),
	}
}

// Create handles POST /v1/timesheets
func (h *TimesheetHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var raw models.RawTimesheet
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	validationErrs, err := h.services.Timesheet.Create(ctx, &raw)
	if err != nil {
		h.log.Error().Err(err).Msg("Timesheet create failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend write failed"})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrs})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"status": "created"})
}

// Update handles PUT /v1/timesheets/:id
func (h *TimesheetHandler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id must be a positive integer"})
		return
	}

	var raw models.RawTimesheet
	if err := c.ShouldBindJSON(&raw); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	raw.ID = id

	validationErrs, err := h.services.Timesheet.Update(ctx, &raw)
	if err != nil {
		h.log.Error().Err(err).Int("timesheet_id", id).Msg("Timesheet update failed")
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend write failed"})
		return
	}
	if len(validationErrs) > 0 {
		c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrs})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "updated"})
}
