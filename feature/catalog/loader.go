package catalog

import (
	"deck-finder/core/match"
	"deck-finder/core/metrics"
	"deck-finder/core/middleware/auth"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	apiKey  string
}

// NewFeature creates a new catalog feature.
func NewFeature(holder *match.Holder, loader match.CatalogLoader, registry *metrics.Registry, logger *zap.Logger, apiKey string) *Feature {
	svc := NewService(holder, loader, registry, logger)
	h := NewHandler(svc, logger)
	return &Feature{service: svc, handler: h, apiKey: apiKey}
}

// Service returns the feature's service, used to load the catalog on start.
func (f *Feature) Service() *Service {
	return f.service
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
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
