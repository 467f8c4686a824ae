package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/config"
	"github.com/timesheet-report-api/internal/report"
	"github.com/timesheet-report-api/internal/service"
	"github.com/timesheet-report-api/internal/timeutil"
)

// ReportHandler handles report endpoints
type ReportHandler struct {
	services *service.Services
	cfg      *config.Config
	log      zerolog.Logger
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(services *service.Services, cfg *config.Config, log zerolog.Logger) *ReportHandler {
	return &ReportHandler{
		services: services,
		cfg:      cfg,
		log:      log.With().Str("handler", "report").Logger(),
	}
}

func filterFromQuery(c *gin.Context) report.Filter {
	return report.Filter{
		Project:   c.Query("project"),
		User:      c.Query("user"),
		StartDate: c.Query("start_date"),
		EndDate:   c.Query("end_date"),
		Query:     c.Query("q"),
	}
}

// List handles GET /v1/reports
func (h *ReportHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	for _, key := range []string{"start_date", "end_date"} {
		if v := c.Query(key); v != "" {
			if _, err := timeutil.ParseDateKey(v, nil); err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": key + " must be YYYY-MM-DD"})
				return
			}
		}
	}

	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page must be a positive integer"})
		return
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(h.cfg.Report.DefaultPageSize)))
	if err != nil || pageSize < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "page_size must be a positive integer"})
		return
	}

	result, err := h.services.Report.Build(ctx, filterFromQuery(c), page, pageSize)
	if err != nil {
		h.log.Error().Err(err).Msg("Report build failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build report"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// Export handles GET /v1/reports/export
// Streams the filtered report as CSV directly to the response
func (h *ReportHandler) Export(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.services.Export.StreamCSV(ctx, c.Writer, filterFromQuery(c)); err != nil {
		h.log.Error().Err(err).Msg("Export failed")
		// Can't return error JSON after streaming has started
		return
	}
}

// WeekMatrix handles GET /v1/reports/matrix?week=YYYY-MM-DD
func (h *ReportHandler) WeekMatrix(c *gin.Context) {
	ctx := c.Request.Context()

	week := c.Query("week")
	if week == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week parameter is required (YYYY-MM-DD)"})
		return
	}
	anchor, err := timeutil.ParseDateKey(week, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "week must be YYYY-MM-DD"})
		return
	}

	view, err := h.services.Report.WeekView(ctx, anchor)
	if err != nil {
		h.log.Error().Err(err).Msg("Week view build failed")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to build week view"})
		return
	}

	c.JSON(http.StatusOK, view)
}
