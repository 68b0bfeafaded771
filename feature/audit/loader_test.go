package audit

import (
	"testing"

	"warehouse-counter/core/catalog"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestFeature(t *testing.T) {
	feature := NewFeature(catalog.New(), nil, nil, zap.NewNop())

	assert.Equal(t, "audit", feature.Name())
	assert.True(t, feature.IsEnabled())
	assert.NotNil(t, feature.Service())
	assert.NoError(t, feature.Load(fiber.New()))
}
