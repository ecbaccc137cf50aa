package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cleanwater/report-service/internal/domain"
)

// ReportFilter captures exact-equality lookup parameters. Nil fields are
// ignored; set fields match case-sensitively against the stored value.
type ReportFilter struct {
	Reporter *string
	Status   *string
	Severity *string
	Type     *string
}

// ReportRepository encapsulates report persistence.
type ReportRepository interface {
	Create(ctx context.Context, report *domain.Report) error
	Update(ctx context.Context, report *domain.Report) error
	GetByID(ctx context.Context, id int64) (*domain.Report, error)
	List(ctx context.Context) ([]domain.Report, error)
	ListWithFilter(ctx context.Context, filter ReportFilter) ([]domain.Report, error)
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}

type reportRepository struct {
	pool *pgxpool.Pool
}

// NewReportRepository returns a Postgres-backed implementation.
func NewReportRepository(pool *pgxpool.Pool) ReportRepository {
	return &reportRepository{pool: pool}
}

const reportColumns = `id, title, details, type, severity, status, location,
               latitude, longitude, reporter, date_reported, last_updated, tags`

func (r *reportRepository) Create(ctx context.Context, report *domain.Report) error {
	const query = `
        INSERT INTO reports (title, details, type, severity, status, location, latitude, longitude, reporter, date_reported, last_updated, tags)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		report.Title,
		report.Details,
		report.Type,
		report.Severity,
		report.Status,
		report.Location,
		report.Latitude,
		report.Longitude,
		report.Reporter,
		report.DateReported,
		report.LastUpdated,
		report.Tags,
	).Scan(&report.ID)
}

func (r *reportRepository) Update(ctx context.Context, report *domain.Report) error {
	const query = `
        UPDATE reports SET title=$1, details=$2, type=$3, severity=$4, status=$5,
            location=$6, tags=$7, last_updated=$8
        WHERE id=$9`
	cmd, err := r.pool.Exec(ctx, query,
		report.Title,
		report.Details,
		report.Type,
		report.Severity,
		report.Status,
		report.Location,
		report.Tags,
		report.LastUpdated,
		report.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reportRepository) GetByID(ctx context.Context, id int64) (*domain.Report, error) {
	query := fmt.Sprintf(`SELECT %s FROM reports WHERE id=$1`, reportColumns)

	var report domain.Report
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.Title,
		&report.Details,
		&report.Type,
		&report.Severity,
		&report.Status,
		&report.Location,
		&report.Latitude,
		&report.Longitude,
		&report.Reporter,
		&report.DateReported,
		&report.LastUpdated,
		&report.Tags,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

func (r *reportRepository) List(ctx context.Context) ([]domain.Report, error) {
	return r.ListWithFilter(ctx, ReportFilter{})
}

func (r *reportRepository) ListWithFilter(ctx context.Context, filter ReportFilter) ([]domain.Report, error) {
	base := fmt.Sprintf(`SELECT %s FROM reports`, reportColumns)
	clauses := []string{"1=1"}
	args := []any{}

	if filter.Reporter != nil {
		args = append(args, *filter.Reporter)
		clauses = append(clauses, fmt.Sprintf("reporter=$%d", len(args)))
	}
	if filter.Status != nil {
		args = append(args, *filter.Status)
		clauses = append(clauses, fmt.Sprintf("status=$%d", len(args)))
	}
	if filter.Severity != nil {
		args = append(args, *filter.Severity)
		clauses = append(clauses, fmt.Sprintf("severity=$%d", len(args)))
	}
	if filter.Type != nil {
		args = append(args, *filter.Type)
		clauses = append(clauses, fmt.Sprintf("type=$%d", len(args)))
	}

	query := fmt.Sprintf(`%s WHERE %s ORDER BY id`, base, strings.Join(clauses, " AND "))

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReports(rows)
}

func (r *reportRepository) Delete(ctx context.Context, id int64) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM reports WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *reportRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM reports`).Scan(&count)
	return count, err
}

func scanReports(rows pgx.Rows) ([]domain.Report, error) {
	result := make([]domain.Report, 0)
	for rows.Next() {
		var report domain.Report
		if err := rows.Scan(
			&report.ID,
			&report.Title,
			&report.Details,
			&report.Type,
			&report.Severity,
			&report.Status,
			&report.Location,
			&report.Latitude,
			&report.Longitude,
			&report.Reporter,
			&report.DateReported,
			&report.LastUpdated,
			&report.Tags,
		); err != nil {
			return nil, err
		}
		result = append(result, report)
	}
	return result, rows.Err()
}
