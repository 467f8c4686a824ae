package service

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/report"
)

// exportService is the concrete implementation of ExportService
type exportService struct {
	reports *reportService
	log     zerolog.Logger
}

// newExportService creates a new ExportService
func newExportService(reports *reportService, log zerolog.Logger) *exportService {
	return &exportService{
		reports: reports,
		log:     log.With().Str("service", "export").Logger(),
	}
}

// StreamCSV writes the filtered (unpaginated) report as CSV to the response.
func (s *exportService) StreamCSV(ctx context.Context, w http.ResponseWriter, filter report.Filter) error {
	entries := s.reports.filtered(ctx, filter)

	filename := "timesheet-report-" + uuid.NewString()[:8] + ".csv"
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename="+filename)

	if err := report.WriteCSV(w, entries); err != nil {
		return err
	}

	s.log.Info().Int("rows", len(entries)).Str("filename", filename).Msg("Report export completed")
	return nil
}
