package integrity

import (
	"deck-finder/core/middleware/auth"
	"deck-finder/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	handler *Handler
	apiKey  string
}

// NewFeature creates a new integrity feature.
func NewFeature(reader checks.ArtifactReader, logger *zap.Logger, apiKey string) *Feature {
	svc := NewService(reader, logger)
	return &Feature{handler: NewHandler(svc), apiKey: apiKey}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "integrity"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app, auth.New(auth.Config{ApiKey: f.apiKey}))
	return nil
}
