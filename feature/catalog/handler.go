package catalog

import (
	"deck-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the catalog.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the catalog routes. protect guards the reload route.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/api/catalog")
	group.Get("/", h.HandleStatus)
	group.Post("/reload", protect, h.HandleReload)
}

// HandleStatus returns counts for the published catalog.
// @Summary Catalog status
// @Description Deck count, distinct item count, decks per format and load time of the published catalog.
// @Tags catalog
// @Produce json
// @Success 200 {object} match.Info "Catalog status"
// @Failure 500 {object} map[string]string "Catalog not loaded"
// @Router /api/catalog [get]
func (h *Handler) HandleStatus(c *fiber.Ctx) error {
	info, err := h.service.Status()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(info)
}

// HandleReload reloads the catalog artifacts.
// @Summary Reload catalog
// @Description Reads the unified artifacts again and publishes them atomically.
// @Tags catalog
// @Produce json
// @Param X-API-Key header string false "API key"
// @Success 200 {object} match.Info "Published catalog"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Reload failed"
// @Router /api/catalog/reload [post]
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	info, err := h.service.Reload(c.UserContext())
	if err != nil {
		l.Error("Catalog reload failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(info)
}
