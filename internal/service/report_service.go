package service

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"github.com/timesheet-report-api/internal/client"
	"github.com/timesheet-report-api/internal/config"
	"github.com/timesheet-report-api/internal/models"
	"github.com/timesheet-report-api/internal/report"
	"github.com/timesheet-report-api/internal/validation"
)

// reportService is the concrete implementation of ReportService
type reportService struct {
	backend client.Backend
	cfg     *config.Config
	log     zerolog.Logger
}

// newReportService creates a new ReportService
func newReportService(backend client.Backend, cfg *config.Config, log zerolog.Logger) *reportService {
	return &reportService{
		backend: backend,
		cfg:     cfg,
		log:     log.With().Str("service", "report").Logger(),
	}
}

// snapshot fetches one immutable input set for an aggregation pass: the
// reference tables, then every project's timesheets in parallel. A failed
// source degrades to an empty collection so the rest of the report still
// builds; malformed records are skipped.
func (s *reportService) snapshot(ctx context.Context) ([]models.TimesheetRecord, []models.Project, []models.User) {
	projects, err := s.backend.Projects(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Projects fetch failed, continuing with none")
		projects = nil
	}
	users, err := s.backend.Users(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("Users fetch failed, continuing with none")
		users = nil
	}

	var (
		mu      sync.Mutex
		wg      sync.WaitGroup
		records []models.TimesheetRecord
	)
	for _, p := range projects {
		wg.Add(1)
		go func(p models.Project) {
			defer wg.Done()
			raws, err := s.backend.Timesheets(ctx, p.ID)
			if err != nil {
				// This project contributes zero records; the others proceed.
				s.log.Warn().Err(err).Int("project_id", p.ID).Msg("Timesheet fetch failed, skipping project")
				return
			}
			valid := make([]models.TimesheetRecord, 0, len(raws))
			for i := range raws {
				rec, errs := validation.Convert(&raws[i])
				if len(errs) > 0 {
					s.log.Warn().
						Int("timesheet_id", raws[i].ID).
						Int("project_id", p.ID).
						Interface("errors", errs).
						Msg("Skipping malformed timesheet record")
					continue
				}
				valid = append(valid, *rec)
			}
			mu.Lock()
			records = append(records, valid...)
			mu.Unlock()
		}(p)
	}
	wg.Wait()

	return records, projects, users
}

// Build aggregates, filters, and paginates a fresh report.
func (s *reportService) Build(ctx context.Context, filter report.Filter, page, pageSize int) (*report.Page, error) {
	if pageSize < 1 {
		pageSize = s.cfg.Report.DefaultPageSize
	}
	if pageSize > s.cfg.Report.MaxPageSize {
		pageSize = s.cfg.Report.MaxPageSize
	}
	if page < 1 {
		page = 1
	}

	records, projects, users := s.snapshot(ctx)
	entries := report.BuildEntries(records, projects, users)
	filtered := filter.Apply(entries)

	s.log.Info().
		Int("records", len(records)).
		Int("entries", len(entries)).
		Int("filtered", len(filtered)).
		Msg("Report built")

	return &report.Page{
		Entries:      report.Paginate(filtered, pageSize, page),
		TotalEntries: len(filtered),
		TotalHours:   report.TotalHours(filtered),
		Page:         page,
		PageSize:     pageSize,
	}, nil
}

// WeekView builds the weekly grid for the week containing anchor.
func (s *reportService) WeekView(ctx context.Context, anchor time.Time) (*report.WeekView, error) {
	records, projects, _ := s.snapshot(ctx)
	return report.BuildWeekView(records, projects, anchor), nil
}

// filtered returns the full filtered entry list, used by exports.
func (s *reportService) filtered(ctx context.Context, filter report.Filter) []report.Entry {
	records, projects, users := s.snapshot(ctx)
	return filter.Apply(report.BuildEntries(records, projects, users))
}
