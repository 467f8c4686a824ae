package service

import (
	"context"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/client"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/validation"
)

// timesheetService validates timesheet writes and forwards them upstream.
type timesheetService struct {
	backend client.Backend
	log     zerolog.Logger
}

// newTimesheetService creates a new TimesheetService
func newTimesheetService(backend client.Backend, log zerolog.Logger) *timesheetService {
	return &timesheetService{
		backend: backend,
		log:     log.With().Str("service", "timesheet").Logger(),
	}
}

// Create validates and forwards a new record. Validation errors are returned
// to the caller, not treated as service failures.
func (s *timesheetService) Create(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error) {
	if errs := validation.ValidateTimesheet(raw); len(errs) > 0 {
		return errs, nil
	}
	if err := s.backend.CreateTimesheet(ctx, raw); err != nil {
		return nil, err
	}
	s.log.Info().Int("project_id", raw.ProjectID).Int("user_id", raw.UserID).Msg("Timesheet created")
	return nil, nil
}

// Update validates and forwards a changed record.
func (s *timesheetService) Update(ctx context.Context, raw *models.RawTimesheet) ([]validation.ValidationError, error) {
	if errs := validation.ValidateTimesheet(raw); len(errs) > 0 {
		return errs, nil
	}
	if err := s.backend.UpdateTimesheet(ctx, raw); err != nil {
		return nil, err
	}
	s.log.Info().Int("timesheet_id", raw.ID).Msg("Timesheet updated")
	return nil, nil
}
