package station

import (
	"warehouse-counter/core/catalog"
	"warehouse-counter/core/scanner"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	enabled bool
}

// NewFeature creates a new Station feature.
func NewFeature(cat *catalog.Catalog, store catalog.Store, cfg scanner.Config, enabled bool, logger *zap.Logger) *Feature {
	return &Feature{
		handler: NewHandler(cat, store, cfg, logger),
		enabled: enabled,
	}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "station"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.enabled
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}
