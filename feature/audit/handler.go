package audit

import (
	"warehouse-counter/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for audits.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the audit routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/audit")
	group.Get("/", h.HandleAudit)
	group.Get("/codes", h.HandleCodes)
	group.Get("/quantities", h.HandleQuantities)
	group.Get("/schema", h.HandleSchema)
}

// HandleAudit runs every check.
// @Summary Run Catalog Audit
// @Description Checks codes, quantity invariants and the products table schema. With export=true the catalog snapshot is also written to the bucket.
// @Tags audit
// @Security ApiKeyAuth
// @Produce json
// @Param export query boolean false "Write a catalog snapshot"
// @Success 200 {object} Report
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit [get]
func (h *Handler) HandleAudit(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting catalog audit")

	report, err := h.service.Run(c.Context(), c.Query("export") == "true")
	if err != nil {
		l.Error("Audit failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	l.Info("Audit completed", zap.Int("products", report.Products), zap.Bool("healthy", report.Healthy))
	return c.JSON(report)
}

// HandleCodes checks product codes.
// @Summary Check Codes
// @Description Lists duplicate, malformed and empty product codes.
// @Tags audit
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.CodeReport
// @Router /audit/codes [get]
func (h *Handler) HandleCodes(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckCodes())
}

// HandleQuantities checks count invariants.
// @Summary Check Quantities
// @Description Lists products whose counted quantity is negative or above the total.
// @Tags audit
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {array} checks.Finding
// @Router /audit/quantities [get]
func (h *Handler) HandleQuantities(c *fiber.Ctx) error {
	return c.JSON(h.service.CheckQuantities())
}

// HandleSchema checks the products table.
// @Summary Check Schema
// @Description Checks that the products table matches the persisted model.
// @Tags audit
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} checks.SchemaReport
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /audit/schema [get]
func (h *Handler) HandleSchema(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	report, err := h.service.CheckSchema()
	if err != nil {
		l.Error("Schema check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(report)
}
