package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	httptransport "github.com/cleanwater/report-service/internal/api/http"
	"github.com/cleanwater/report-service/internal/api/http/handlers"
	"github.com/cleanwater/report-service/internal/bootstrap"
	"github.com/cleanwater/report-service/internal/cache"
	"github.com/cleanwater/report-service/internal/config"
	"github.com/cleanwater/report-service/internal/events"
	"github.com/cleanwater/report-service/internal/observability"
	"github.com/cleanwater/report-service/internal/persistence"
	"github.com/cleanwater/report-service/internal/repository"
	"github.com/cleanwater/report-service/internal/service"
	"github.com/cleanwater/report-service/internal/worker"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := observability.NewLogger(cfg.Logger)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pg, err := persistence.NewPostgres(ctx, cfg.Postgres, logger)
	if err != nil {
		logger.Fatal("failed to connect postgres", zap.Error(err))
	}
	defer pg.Close()

	if cfg.Postgres.RunMigrations && pg.PoolHandle() != nil {
		if err := persistence.RunMigrations(ctx, pg.PoolHandle(), logger); err != nil {
			logger.Fatal("failed to run migrations", zap.Error(err))
		}
	}

	redis := persistence.NewRedis(cfg.Redis, logger)
	defer redis.Close()

	var userRepo repository.UserRepository
	var reportRepo repository.ReportRepository
	if pool := pg.PoolHandle(); pool != nil {
		userRepo = repository.NewUserRepository(pool)
		reportRepo = repository.NewReportRepository(pool)
	} else {
		logger.Info("running with in-memory stores")
		userRepo = repository.NewMemoryUserRepository()
		reportRepo = repository.NewMemoryReportRepository()
	}

	dispatcher := events.NewInMemoryDispatcher()
	statsCache := cache.NewStatsCache(redis.Client, cfg.Cache.StatsTTL(), logger)

	reportService := service.NewReportService(service.ReportDependencies{
		ReportRepo: reportRepo,
		StatsCache: statsCache,
		Dispatcher: dispatcher,
	})
	userService := service.NewUserService(userRepo)

	notificationService := service.NewNotificationService(dispatcher, logger, cfg.Notification)
	worker.StartNotificationWorker(notificationService)

	if cfg.Seed.DemoData {
		if err := bootstrap.SeedDemoData(ctx, userRepo, reportRepo, logger); err != nil {
			logger.Fatal("failed to seed demo data", zap.Error(err))
		}
	}

	metrics := observability.NewMetrics()

	app := fiber.New()
	httptransport.RegisterMiddlewares(app, logger, metrics, cfg.App.RequestTimeout())

	httptransport.RegisterRoutes(app, httptransport.RouteConfig{
		Health:  handlers.NewHealthHandler(cfg.App.Name, cfg.App.Version, pg, redis),
		Reports: handlers.NewReportsHandler(reportService),
		Users:   handlers.NewUsersHandler(userService),
	})

	go func() {
		if err := app.Listen(cfg.App.Addr()); err != nil {
			logger.Fatal("fiber listen", zap.Error(err))
		}
	}()

	waitForShutdown(logger)

	_ = app.Shutdown()
}

func waitForShutdown(logger *zap.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	logger.Info("shutting down", zap.String("signal", sig.String()))
}
