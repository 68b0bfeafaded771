package inventory

import (
	"testing"

	"warehouse-counter/core/catalog"
	catalogmocks "warehouse-counter/core/catalog/mocks"
	"warehouse-counter/core/storage"
	"warehouse-counter/core/storage/mocks"
	"warehouse-counter/feature/inventory/restock"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	cat := catalog.New()
	feature := NewFeature(cat, new(catalogmocks.Store), new(mocks.Client), storage.Config{}, restock.Config{}, zap.NewNop())

	assert.Equal(t, "inventory", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.Same(t, cat, feature.Service().Catalog())

	app := fiber.New()
	assert.NoError(t, feature.Load(app))
}
