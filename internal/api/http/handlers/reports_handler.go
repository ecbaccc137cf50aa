package handlers

import (
	"net/http"
	"net/url"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/cleanwater/report-service/internal/api/dto"
	"github.com/cleanwater/report-service/internal/service"
	apperrors "github.com/cleanwater/report-service/pkg/util/errorutil"
)

// ReportsHandler exposes the report endpoints under /api/reports.
type ReportsHandler struct {
	service *service.ReportService
}

// NewReportsHandler constructs handler.
func NewReportsHandler(reportService *service.ReportService) *ReportsHandler {
	return &ReportsHandler{service: reportService}
}

// List GET /api/reports.
func (h *ReportsHandler) List(c *fiber.Ctx) error {
	reports, err := h.service.List(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

// Get GET /api/reports/:id.
func (h *ReportsHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c, "report")
	if err != nil {
		return err
	}
	report, err := h.service.Get(c.UserContext(), id)
	if err != nil {
		return err
	}
	if report == nil {
		return c.SendStatus(http.StatusNotFound)
	}
	return c.JSON(report)
}

// ListByReporter GET /api/reports/reporter/:reporter.
func (h *ReportsHandler) ListByReporter(c *fiber.Ctx) error {
	reports, err := h.service.ListByReporter(c.UserContext(), pathValue(c, "reporter"))
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

// ListByStatus GET /api/reports/status/:status.
func (h *ReportsHandler) ListByStatus(c *fiber.Ctx) error {
	reports, err := h.service.ListByStatus(c.UserContext(), pathValue(c, "status"))
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

// ListBySeverity GET /api/reports/severity/:severity.
func (h *ReportsHandler) ListBySeverity(c *fiber.Ctx) error {
	reports, err := h.service.ListBySeverity(c.UserContext(), pathValue(c, "severity"))
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

// ListByType GET /api/reports/type/:type.
func (h *ReportsHandler) ListByType(c *fiber.Ctx) error {
	reports, err := h.service.ListByType(c.UserContext(), pathValue(c, "type"))
	if err != nil {
		return err
	}
	return c.JSON(reports)
}

// Create POST /api/reports.
func (h *ReportsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.Create(c.UserContext(), service.ReportCreateInput{
		Title:     req.Title,
		Details:   req.Details,
		Type:      req.Type,
		Severity:  req.Severity,
		Status:    req.Status,
		Location:  req.Location,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
		Reporter:  req.ReporterName,
		Tags:      req.Tags,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(report)
}

// Update PUT /api/reports/:id.
func (h *ReportsHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c, "report")
	if err != nil {
		return err
	}
	var req dto.UpdateReportRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.Update(c.UserContext(), id, service.ReportUpdateInput{
		Title:    req.Title,
		Details:  req.Details,
		Type:     req.Type,
		Severity: req.Severity,
		Status:   req.Status,
		Location: req.Location,
		Tags:     req.Tags,
	})
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// UpdateStatus PATCH /api/reports/:id/status.
func (h *ReportsHandler) UpdateStatus(c *fiber.Ctx) error {
	id, err := parseID(c, "report")
	if err != nil {
		return err
	}
	var req dto.StatusUpdateRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}

	report, err := h.service.UpdateStatus(c.UserContext(), id, req.Status, req.Severity)
	if err != nil {
		return err
	}
	return c.JSON(report)
}

// Delete DELETE /api/reports/:id.
func (h *ReportsHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c, "report")
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.UserContext(), id); err != nil {
		return err
	}
	return c.JSON(dto.MessageResponse{Message: "Report deleted successfully"})
}

// Stats GET /api/reports/stats.
func (h *ReportsHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.service.Stats(c.UserContext())
	if err != nil {
		return err
	}
	return c.JSON(stats)
}

func parseID(c *fiber.Ctx, resource string) (int64, error) {
	id, err := strconv.ParseInt(c.Params("id"), 10, 64)
	if err != nil {
		return 0, apperrors.NewValidationError("invalid "+resource+" id", nil)
	}
	return id, nil
}

func pathValue(c *fiber.Ctx, name string) string {
	val, err := url.PathUnescape(c.Params(name))
	if err != nil {
		return c.Params(name)
	}
	return val
}
