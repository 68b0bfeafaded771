package audit

import (
	"warehouse-counter/core/catalog"
	"warehouse-counter/feature/inventory"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Audit feature.
func NewFeature(cat *catalog.Catalog, db *gorm.DB, exporter *inventory.Exporter, logger *zap.Logger) *Feature {
	svc := NewService(cat, db, exporter, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "audit"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service for the CLI commands.
func (f *Feature) Service() *Service {
	return f.service
}
