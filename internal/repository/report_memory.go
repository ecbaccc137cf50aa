package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/cleanwater/report-service/internal/domain"
)

// memoryReportRepository keeps reports in a mutex-guarded map. Records are
// copied on the way in and out, so readers never observe a partial write and
// id assignment cannot collide under concurrent creates.
type memoryReportRepository struct {
	mu      sync.RWMutex
	nextID  int64
	reports map[int64]domain.Report
}

// NewMemoryReportRepository returns an in-memory implementation, used when no
// Postgres DSN is configured and as the test substrate.
func NewMemoryReportRepository() ReportRepository {
	return &memoryReportRepository{
		nextID:  1,
		reports: make(map[int64]domain.Report),
	}
}

func (r *memoryReportRepository) Create(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	report.ID = r.nextID
	r.nextID++
	r.reports[report.ID] = *report
	return nil
}

func (r *memoryReportRepository) Update(_ context.Context, report *domain.Report) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[report.ID]; !ok {
		return ErrNotFound
	}
	r.reports[report.ID] = *report
	return nil
}

func (r *memoryReportRepository) GetByID(_ context.Context, id int64) (*domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	report, ok := r.reports[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &report, nil
}

func (r *memoryReportRepository) List(ctx context.Context) ([]domain.Report, error) {
	return r.ListWithFilter(ctx, ReportFilter{})
}

func (r *memoryReportRepository) ListWithFilter(_ context.Context, filter ReportFilter) ([]domain.Report, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	result := make([]domain.Report, 0, len(r.reports))
	for _, report := range r.reports {
		if matchesFilter(report, filter) {
			result = append(result, report)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].ID < result[j].ID })
	return result, nil
}

func matchesFilter(report domain.Report, filter ReportFilter) bool {
	if filter.Reporter != nil && report.Reporter != *filter.Reporter {
		return false
	}
	if filter.Status != nil && report.Status != *filter.Status {
		return false
	}
	if filter.Severity != nil && report.Severity != *filter.Severity {
		return false
	}
	if filter.Type != nil && report.Type != *filter.Type {
		return false
	}
	return true
}

func (r *memoryReportRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.reports[id]; !ok {
		return ErrNotFound
	}
	delete(r.reports, id)
	return nil
}

func (r *memoryReportRepository) Count(_ context.Context) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return int64(len(r.reports)), nil
}
