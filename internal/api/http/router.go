package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/cleanwater/report-service/internal/api/http/handlers"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health  *handlers.HealthHandler
	Reports *handlers.ReportsHandler
	Users   *handlers.UsersHandler
}

// RegisterRoutes wires HTTP routes.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	reports := app.Group("/api/reports")
	reports.Get("/", cfg.Reports.List)
	// static segments go first so :id does not swallow them
	reports.Get("/stats", cfg.Reports.Stats)
	reports.Get("/reporter/:reporter", cfg.Reports.ListByReporter)
	reports.Get("/status/:status", cfg.Reports.ListByStatus)
	reports.Get("/severity/:severity", cfg.Reports.ListBySeverity)
	reports.Get("/type/:type", cfg.Reports.ListByType)
	reports.Get("/:id", cfg.Reports.Get)
	reports.Post("/", cfg.Reports.Create)
	reports.Put("/:id", cfg.Reports.Update)
	reports.Patch("/:id/status", cfg.Reports.UpdateStatus)
	reports.Delete("/:id", cfg.Reports.Delete)

	users := app.Group("/api/users")
	users.Get("/", cfg.Users.List)
	users.Get("/:id", cfg.Users.Get)
	users.Post("/register", cfg.Users.Register)
	users.Post("/login", cfg.Users.Login)
	users.Put("/:id", cfg.Users.Update)
	users.Delete("/:id", cfg.Users.Delete)
}
