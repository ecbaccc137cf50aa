package bootstrap

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/cleanwater/report-service/internal/domain"
	"github.com/cleanwater/report-service/internal/repository"
)

// SeedDemoData inserts demo users and reports on first boot. Each collection
// is seeded only when empty, so repeated starts are idempotent.
func SeedDemoData(ctx context.Context, users repository.UserRepository, reports repository.ReportRepository, logger *zap.Logger) error {
	if err := seedUsers(ctx, users, logger); err != nil {
		return err
	}
	return seedReports(ctx, reports, logger)
}

func seedUsers(ctx context.Context, users repository.UserRepository, logger *zap.Logger) error {
	count, err := users.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	today := time.Now().Format("2006-01-02")
	demo := []domain.User{
		{
			Name:       "John Citizen",
			Email:      "john@citizen.com",
			Password:   "demo123",
			Role:       domain.UserRoleCitizen,
			Department: "Community Member",
			CreatedAt:  today,
		},
		{
			Name:       "Sarah Official",
			Email:      "sarah@waterauthority.gov",
			Password:   "demo123",
			Role:       domain.UserRoleOfficial,
			Department: "Water Quality Authority",
			CreatedAt:  today,
		},
	}
	for i := range demo {
		if err := users.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	logger.Info("demo users created", zap.Int("count", len(demo)))
	return nil
}

func seedReports(ctx context.Context, reports repository.ReportRepository, logger *zap.Logger) error {
	count, err := reports.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	demo := []domain.Report{
		{
			Title:        "Drought Conditions Affecting Supply",
			Details:      "Water levels in the main reservoir are critically low, affecting three major districts.",
			Type:         "Drought",
			Severity:     "High",
			Status:       domain.ReportStatusResolved,
			Location:     "Central Valley Reservoir",
			Reporter:     "Afrid",
			DateReported: "2025-10-28",
			LastUpdated:  "2025-10-30",
			Tags:         "Unsafe Drinking Water,Infrastructure Failure",
		},
		{
			Title:        "Pipe Burst near High School",
			Details:      "A major water main burst, causing flooding and service interruption.",
			Type:         "Infrastructure",
			Severity:     "Critical",
			Status:       domain.ReportStatusInProgress,
			Location:     "123 Main St, Sector 4",
			Reporter:     "Jane Doe",
			DateReported: "2025-11-01",
			LastUpdated:  "2025-11-02",
			Tags:         "Water Leak,Road Hazard",
		},
		{
			Title:        "Unusual Smell in Tap Water",
			Details:      "Tap water has a strong, chemical odor in the Western neighborhood.",
			Type:         "Quality",
			Severity:     "Medium",
			Status:       domain.ReportStatusPendingReview,
			Location:     "Western Residential Area",
			Reporter:     "Mark Smith",
			DateReported: "2025-11-03",
			LastUpdated:  "2025-11-03",
			Tags:         "Contamination,Health Risk",
		},
	}
	for i := range demo {
		if err := reports.Create(ctx, &demo[i]); err != nil {
			return err
		}
	}
	logger.Info("demo reports created", zap.Int("count", len(demo)))
	return nil
}
