package search

import (
	"encoding/json"

	"deck-finder/core/logger"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for deck search.
type Handler struct {
	service *Service
	logger  *zap.Logger
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, logger *zap.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// RegisterRoutes registers the search routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/api")
	group.Post("/search", h.HandleSearch)
	group.All("/search", h.HandleMethodNotAllowed)
}

// rawRequest keeps field types loose so non-string values can be rejected.
type rawRequest struct {
	CardList any `json:"cardList"`
	Format   any `json:"format"`
}

// HandleSearch matches a card list against the catalog.
// @Summary Search decks
// @Description Returns the decks of a format that the posted card list completes to at least 70 percent.
// @Tags search
// @Accept json
// @Produce json
// @Param request body Request true "Owned cards and format"
// @Success 200 {object} match.Result "Exact (decks100) and partial (decks70) matches"
// @Failure 400 {object} ErrorResponse "Invalid request"
// @Failure 405 {object} ErrorResponse "Method not allowed"
// @Failure 500 {object} ErrorResponse "Catalog unavailable"
// @Router /api/search [post]
func (h *Handler) HandleSearch(c *fiber.Ctx) error {
	l := logger.WithRayID(h.logger, c)

	var raw rawRequest
	if len(c.Body()) > 0 {
		if err := json.Unmarshal(c.Body(), &raw); err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msgFieldsNotStrings})
		}
	}
	cardList, ok1 := raw.CardList.(string)
	format, ok2 := raw.Format.(string)
	if !ok1 || !ok2 {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: msgFieldsNotStrings})
	}

	res, err := h.service.Search(cardList, format)
	if err != nil {
		if IsValidationError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: err.Error()})
		}
		l.Error("Search failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: msgCatalogFailure})
	}

	l.Debug("Search completed",
		zap.String("format", format),
		zap.Int("candidates", res.Stats.Candidates),
		zap.Int("exact", len(res.Exact)),
		zap.Int("partial", len(res.Partial)),
	)
	return c.JSON(res)
}

// HandleMethodNotAllowed rejects anything but POST on the search route.
func (h *Handler) HandleMethodNotAllowed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderAllow, fiber.MethodPost)
	return c.Status(fiber.StatusMethodNotAllowed).JSON(ErrorResponse{Error: msgMethodNotAllowed})
}
