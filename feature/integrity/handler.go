package integrity

import (
	"deck-finder/core/logger"
	"deck-finder/feature/integrity/checks"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for integrity checks.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the integrity routes behind protect.
func (h *Handler) RegisterRoutes(app fiber.Router, protect fiber.Handler) {
	group := app.Group("/api/integrity", protect)
	group.Get("/", h.HandleIntegrityCheck)
	group.Get("/artifacts", h.HandleIntegrityCheck)
}

// HandleIntegrityCheck checks the persisted catalog artifacts.
// @Summary Check catalog artifacts
// @Description Loads every shard artifact and the merged catalog and reports unreadable files and deck ids present on only one side.
// @Tags integrity
// @Produce json
// @Param X-API-Key header string false "API key"
// @Success 200 {object} checks.ArtifactReport "Artifact report"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /api/integrity [get]
func (h *Handler) HandleIntegrityCheck(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)
	l.Info("Starting artifact integrity check")

	report, err := h.service.CheckArtifacts(c.UserContext())
	if err != nil {
		l.Error("Artifact check failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	if report.Status != checks.StatusOK {
		l.Warn("Artifact problems detected",
			zap.Int("missing_from_catalog", report.MissingFromCatalog.Count),
			zap.Int("orphaned", report.Orphaned.Count),
			zap.String("catalog", report.Catalog.Status),
		)
	}
	return c.JSON(report)
}
