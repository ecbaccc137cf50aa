package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/cleanwater/report-service/internal/cache"
	"github.com/cleanwater/report-service/internal/domain"
	"github.com/cleanwater/report-service/internal/events"
	"github.com/cleanwater/report-service/internal/repository"
	apperrors "github.com/cleanwater/report-service/pkg/util/errorutil"
)

const dateLayout = "2006-01-02"

// ReportService coordinates report workflows.
type ReportService struct {
	reports    repository.ReportRepository
	stats      *cache.StatsCache
	dispatcher events.Dispatcher
	now        func() time.Time
}

// ReportDependencies bundles collaborators for the report service.
type ReportDependencies struct {
	ReportRepo repository.ReportRepository
	StatsCache *cache.StatsCache
	Dispatcher events.Dispatcher
}

// ReportCreateInput describes report submission payload.
type ReportCreateInput struct {
	Title     string
	Details   string
	Type      string
	Severity  string
	Status    string
	Location  string
	Latitude  *float64
	Longitude *float64
	Reporter  string
	Tags      string
}

// ReportUpdateInput describes a full update. Coordinates and reporter are
// immutable through this path.
type ReportUpdateInput struct {
	Title    string
	Details  string
	Type     string
	Severity string
	Status   string
	Location string
	Tags     string
}

// NewReportService constructs the service.
func NewReportService(deps ReportDependencies) *ReportService {
	return &ReportService{
		reports:    deps.ReportRepo,
		stats:      deps.StatsCache,
		dispatcher: deps.Dispatcher,
		now:        time.Now,
	}
}

// List returns every report.
func (s *ReportService) List(ctx context.Context) ([]domain.Report, error) {
	return s.reports.List(ctx)
}

// Get returns the report, or nil when absent.
func (s *ReportService) Get(ctx context.Context, id int64) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	return report, err
}

// ListByReporter returns reports whose reporter matches exactly.
func (s *ReportService) ListByReporter(ctx context.Context, reporter string) ([]domain.Report, error) {
	return s.reports.ListWithFilter(ctx, repository.ReportFilter{Reporter: &reporter})
}

// ListByStatus returns reports whose status matches exactly.
func (s *ReportService) ListByStatus(ctx context.Context, status string) ([]domain.Report, error) {
	return s.reports.ListWithFilter(ctx, repository.ReportFilter{Status: &status})
}

// ListBySeverity returns reports whose severity matches exactly.
func (s *ReportService) ListBySeverity(ctx context.Context, severity string) ([]domain.Report, error) {
	return s.reports.ListWithFilter(ctx, repository.ReportFilter{Severity: &severity})
}

// ListByType returns reports whose type matches exactly.
func (s *ReportService) ListByType(ctx context.Context, reportType string) ([]domain.Report, error) {
	return s.reports.ListWithFilter(ctx, repository.ReportFilter{Type: &reportType})
}

// Create validates and persists a new report. Status falls back to
// "Pending Review" when the submission leaves it empty; both date fields are
// stamped with the current date.
func (s *ReportService) Create(ctx context.Context, input ReportCreateInput) (*domain.Report, error) {
	missing := missingFields(map[string]string{
		"title":    input.Title,
		"details":  input.Details,
		"type":     input.Type,
		"severity": input.Severity,
		"location": input.Location,
		"reporter": input.Reporter,
	})
	if len(missing) > 0 {
		return nil, apperrors.NewValidationError(
			"title, details, type, severity, location and reporter are required",
			map[string]any{"missing": missing})
	}

	status := input.Status
	if status == "" {
		status = domain.ReportStatusPendingReview
	}

	today := s.today()
	report := &domain.Report{
		Title:        input.Title,
		Details:      input.Details,
		Type:         input.Type,
		Severity:     input.Severity,
		Status:       status,
		Location:     input.Location,
		Latitude:     input.Latitude,
		Longitude:    input.Longitude,
		Reporter:     input.Reporter,
		DateReported: today,
		LastUpdated:  today,
		Tags:         input.Tags,
	}
	if err := s.reports.Create(ctx, report); err != nil {
		return nil, err
	}

	s.stats.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportCreated,
		ReportID: report.ID,
		Payload: events.ReportCreatedPayload{
			Title:    report.Title,
			Type:     report.Type,
			Severity: report.Severity,
			Status:   report.Status,
			Reporter: report.Reporter,
		},
	})
	return report, nil
}

// Update overwrites the mutable fields of an existing report and refreshes
// its last-updated date. Reporter, coordinates and the reported date never
// change through this path.
func (s *ReportService) Update(ctx context.Context, id int64, input ReportUpdateInput) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundReport(id, err)
	}

	oldStatus := report.Status
	oldSeverity := report.Severity
	report.Title = input.Title
	report.Details = input.Details
	report.Type = input.Type
	report.Severity = input.Severity
	report.Status = input.Status
	report.Location = input.Location
	report.Tags = input.Tags
	report.LastUpdated = s.today()

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, notFoundReport(id, err)
	}

	s.stats.Invalidate(ctx)
	if oldStatus != report.Status || oldSeverity != report.Severity {
		s.publishStatusChanged(ctx, report, oldStatus, oldSeverity)
	}
	return report, nil
}

// UpdateStatus overwrites just status and severity, refreshing the
// last-updated date.
func (s *ReportService) UpdateStatus(ctx context.Context, id int64, status, severity string) (*domain.Report, error) {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return nil, notFoundReport(id, err)
	}

	if status == "" || severity == "" {
		return nil, apperrors.NewValidationError("status and severity are required", nil)
	}

	oldStatus := report.Status
	oldSeverity := report.Severity
	report.Status = status
	report.Severity = severity
	report.LastUpdated = s.today()

	if err := s.reports.Update(ctx, report); err != nil {
		return nil, notFoundReport(id, err)
	}

	s.stats.Invalidate(ctx)
	if oldStatus != report.Status || oldSeverity != report.Severity {
		s.publishStatusChanged(ctx, report, oldStatus, oldSeverity)
	}
	return report, nil
}

// Delete removes the report.
func (s *ReportService) Delete(ctx context.Context, id int64) error {
	report, err := s.reports.GetByID(ctx, id)
	if err != nil {
		return notFoundReport(id, err)
	}
	if err := s.reports.Delete(ctx, id); err != nil {
		return notFoundReport(id, err)
	}

	s.stats.Invalidate(ctx)
	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportDeleted,
		ReportID: id,
		Payload:  events.ReportDeletedPayload{Title: report.Title},
	})
	return nil
}

// Stats aggregates counts over the full collection, serving from the cache
// when a fresh snapshot exists.
func (s *ReportService) Stats(ctx context.Context) (domain.ReportStats, error) {
	if cached := s.stats.Get(ctx); cached != nil {
		return *cached, nil
	}

	reports, err := s.reports.List(ctx)
	if err != nil {
		return domain.ReportStats{}, err
	}

	stats := domain.ReportStats{Total: len(reports)}
	for _, report := range reports {
		switch report.Status {
		case domain.ReportStatusPendingReview:
			stats.Pending++
		case domain.ReportStatusInProgress:
			stats.InProgress++
		case domain.ReportStatusResolved:
			stats.Resolved++
		}
		switch report.Severity {
		case domain.ReportSeverityCritical:
			stats.Critical++
		case domain.ReportSeverityHigh:
			stats.High++
		}
	}

	s.stats.Set(ctx, stats)
	return stats, nil
}

func (s *ReportService) today() string {
	return s.now().Format(dateLayout)
}

func (s *ReportService) publishStatusChanged(ctx context.Context, report *domain.Report, oldStatus, oldSeverity string) {
	s.publishEvent(ctx, events.Event{
		Type:     events.EventReportStatusChanged,
		ReportID: report.ID,
		Payload: events.ReportStatusChangedPayload{
			OldStatus:   oldStatus,
			NewStatus:   report.Status,
			OldSeverity: oldSeverity,
			NewSeverity: report.Severity,
		},
	})
}

func (s *ReportService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	event.ID = uuid.NewString()
	event.Timestamp = s.now()
	_ = s.dispatcher.Publish(ctx, event)
}

func notFoundReport(id int64, err error) error {
	if errors.Is(err, repository.ErrNotFound) {
		return apperrors.NewNotFound(fmt.Sprintf("Report not found with id: %d", id), nil)
	}
	return err
}

func missingFields(fields map[string]string) []string {
	var missing []string
	for name, value := range fields {
		if strings.TrimSpace(value) == "" {
			missing = append(missing, name)
		}
	}
	return missing
}
