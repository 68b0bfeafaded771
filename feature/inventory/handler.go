package inventory

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"warehouse-counter/core/catalog"
	"warehouse-counter/core/codegen"
	"warehouse-counter/core/domainerr"
	"warehouse-counter/core/logger"
	"warehouse-counter/core/matcher"
	"warehouse-counter/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the inventory.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the inventory routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/inventory")
	group.Get("/products", h.HandleList)
	group.Get("/products/lookup/:code", h.HandleLookup)
	group.Get("/products/:id", h.HandleGet)
	group.Post("/products", h.HandleCreate)
	group.Put("/products/:id", h.HandleUpdate)
	group.Delete("/products/:id", h.HandleDelete)
	group.Post("/products/:id/count", h.HandleCount)
	group.Post("/products/:id/reset", h.HandleReset)
	group.Post("/codes/preview", h.HandlePreviewCode)
	group.Post("/match", h.HandleMatch)
	group.Post("/import", h.HandleImport)
	group.Post("/restock", h.HandleRestock)
	group.Post("/export", h.HandleExport)
	group.Get("/summary", h.HandleSummary)
}

// CountRequest is the body of a count operation.
type CountRequest struct {
	Direction string          `json:"direction" example:"DECREMENT"`
	Amount    decimal.Decimal `json:"amount" swaggertype:"string" example:"3"`
}

// CountResponse is the result of a count operation.
type CountResponse struct {
	Change  reconcile.Change `json:"change"`
	Product catalog.Product  `json:"product"`
	State   catalog.State    `json:"state"`
}

// ImportRequest carries a grid of cells, header row first.
type ImportRequest struct {
	Rows [][]any `json:"rows"`
}

// HandleList lists products.
// @Summary List Products
// @Description Lists catalog products ordered by code, optionally filtered by reconciliation state or a text query.
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param state query string false "NOT_COUNTED, PARTIAL or COMPLETE"
// @Param q query string false "Substring of code, alias or name"
// @Success 200 {array} catalog.Product
// @Router /inventory/products [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	products := h.service.List(Filter{
		State: catalog.State(strings.ToUpper(c.Query("state"))),
		Query: c.Query("q"),
	})
	return c.JSON(products)
}

// HandleGet returns one product.
// @Summary Get Product
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/products/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	p, err := h.service.Get(c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleLookup resolves a scanned code.
// @Summary Lookup Scanned Code
// @Description Resolves a code by exact code, exact alias, then alias containing the code.
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param code path string true "Scanned code"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} map[string]string "SCAN_NOT_FOUND"
// @Router /inventory/products/lookup/{code} [get]
func (h *Handler) HandleLookup(c *fiber.Ctx) error {
	p, err := h.service.Lookup(c.Params("code"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleCreate creates a product.
// @Summary Create Product
// @Description Creates a product. The code is generated when empty or when regenerate is set.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param product body Draft true "Product"
// @Success 201 {object} catalog.Product
// @Failure 400 {object} map[string]string "Invalid Input"
// @Failure 409 {object} map[string]string "CODE_COLLISION"
// @Router /inventory/products [post]
func (h *Handler) HandleCreate(c *fiber.Ctx) error {
	var d Draft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	p, err := h.service.Save(c.Context(), d, NewProduct{})
	if err != nil {
		return h.fail(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(p)
}

// HandleUpdate edits a product.
// @Summary Update Product
// @Description Edits the descriptive fields and total. The code is kept unless the body carries another one or sets regenerate.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param product body Draft true "Product"
// @Success 200 {object} catalog.Product
// @Failure 404 {object} map[string]string "Not Found"
// @Failure 409 {object} map[string]string "CODE_COLLISION"
// @Router /inventory/products/{id} [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var d Draft
	if err := c.BodyParser(&d); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	p, err := h.service.Save(c.Context(), d, ExistingProduct{ID: c.Params("id")})
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandleDelete removes a product.
// @Summary Delete Product
// @Description Removes a product. Removing an unknown id succeeds.
// @Tags inventory
// @Security ApiKeyAuth
// @Param id path string true "Product ID"
// @Success 204
// @Router /inventory/products/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.Context(), c.Params("id")); err != nil {
		return h.fail(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// HandleCount applies a count operation.
// @Summary Count Product
// @Description DECREMENT counts units (takes them off the pending stock); INCREMENT undoes a count.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body CountRequest true "Operation"
// @Success 200 {object} CountResponse
// @Failure 400 {object} map[string]string "EXCEEDS_AVAILABLE, EXCEEDS_COUNTED or INVALID_AMOUNT"
// @Router /inventory/products/{id}/count [post]
func (h *Handler) HandleCount(c *fiber.Ctx) error {
	var req CountRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	dir, err := reconcile.ParseDirection(req.Direction)
	if err != nil {
		return h.fail(c, err)
	}

	change, p, err := h.service.Count(c.Context(), c.Params("id"), dir, req.Amount)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(CountResponse{Change: change, Product: p, State: p.State()})
}

// HandleReset clears a product's count.
// @Summary Reset Count
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} catalog.Product
// @Router /inventory/products/{id}/reset [post]
func (h *Handler) HandleReset(c *fiber.Ctx) error {
	p, err := h.service.Reset(c.Context(), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(p)
}

// HandlePreviewCode proposes a code.
// @Summary Preview Code
// @Description Returns the next free code for a category, branch and name. Nothing is reserved.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param input body codegen.Input true "Code input"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string "CODE_INSUFFICIENT_INPUT"
// @Router /inventory/codes/preview [post]
func (h *Handler) HandlePreviewCode(c *fiber.Ctx) error {
	var in codegen.Input
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	code, err := h.service.PreviewCode(in)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(fiber.Map{"code": code})
}

// HandleMatch resolves a free-text reference.
// @Summary Match Reference
// @Description Resolves a name and optional code to a product using exact and partial code and name matching.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param reference body matcher.Reference true "Reference"
// @Success 200 {object} matcher.Candidate
// @Failure 404 {object} map[string]string "Not Found"
// @Router /inventory/match [post]
func (h *Handler) HandleMatch(c *fiber.Ctx) error {
	var ref matcher.Reference
	if err := c.BodyParser(&ref); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	cand, ok := h.service.Match(ref)
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No matching product", "code": domainerr.KindNotFound})
	}
	return c.JSON(cand)
}

// HandleImport imports a product grid.
// @Summary Import Products
// @Description Imports products from a JSON grid ({"rows": [[header...], [cells...]]}) or a text/csv body.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Accept text/csv
// @Produce json
// @Param request body ImportRequest true "Grid"
// @Success 200 {object} ImportResult
// @Failure 400 {object} map[string]string "Invalid Input"
// @Router /inventory/import [post]
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	var grid [][]any
	if strings.HasPrefix(c.Get(fiber.HeaderContentType), "text/csv") {
		records, err := csv.NewReader(bytes.NewReader(c.Body())).ReadAll()
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid CSV", "details": err.Error()})
		}
		grid = make([][]any, len(records))
		for i, rec := range records {
			grid[i] = make([]any, len(rec))
			for j, v := range rec {
				grid[i][j] = v
			}
		}
	} else {
		var req ImportRequest
		if err := c.BodyParser(&req); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
		}
		grid = req.Rows
	}

	res, err := h.service.Import(c.Context(), grid)
	if err != nil {
		return h.fail(c, err)
	}
	l.Info("Products imported", zap.Int("created", len(res.Created)), zap.Int("failed", len(res.Failed)))
	return c.JSON(res)
}

// HandleRestock adds invoice line items to product totals.
// @Summary Restock From Line Items
// @Description Plans line items (posted or read from a bucket object) against the catalog. The plan is applied only with confirm=true and dry_run=false.
// @Tags inventory
// @Security ApiKeyAuth
// @Accept json
// @Produce json
// @Param request body RestockRequest true "Restock request"
// @Success 200 {object} RestockResponse
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/restock [post]
func (h *Handler) HandleRestock(c *fiber.Ctx) error {
	var req RestockRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	resp, err := h.service.Restock(c.Context(), req)
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(resp)
}

// HandleExport writes the catalog snapshot to the bucket.
// @Summary Export Catalog
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} ExportInfo
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /inventory/export [post]
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	info, err := h.service.Export(c.Context())
	if err != nil {
		return h.fail(c, err)
	}
	return c.JSON(info)
}

// HandleSummary returns the counting progress.
// @Summary Counting Progress
// @Tags inventory
// @Security ApiKeyAuth
// @Produce json
// @Success 200 {object} catalog.Summary
// @Router /inventory/summary [get]
func (h *Handler) HandleSummary(c *fiber.Ctx) error {
	return c.JSON(h.service.Summary())
}

// fail maps an error to a status and the usual error body.
func (h *Handler) fail(c *fiber.Ctx, err error) error {
	status := StatusOf(err)
	body := fiber.Map{"error": err.Error()}

	var derr *domainerr.Error
	if errors.As(err, &derr) {
		body["code"] = derr.Kind
	}
	if status >= fiber.StatusInternalServerError {
		logger.WithRayID(h.service.logger, c).Error("Inventory request failed", zap.Error(err))
	}
	return c.Status(status).JSON(body)
}

// StatusOf maps domain error kinds to HTTP statuses.
func StatusOf(err error) int {
	switch domainerr.KindOf(err) {
	case domainerr.KindNotFound, domainerr.KindScanNotFound:
		return fiber.StatusNotFound
	case domainerr.KindExceedsAvailable, domainerr.KindExceedsCounted, domainerr.KindInvalidAmount,
		domainerr.KindInvalidInput, domainerr.KindCodeInsufficientInput:
		return fiber.StatusBadRequest
	case domainerr.KindCodeCollision, domainerr.KindInvalidState:
		return fiber.StatusConflict
	case domainerr.KindPersistenceFailure:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}
