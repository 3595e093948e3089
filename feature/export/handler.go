package export

import (
	"arkdata/core/logger"
	"arkdata/feature/gamedata"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for snapshot exports.
type Handler struct {
	service *Service
	data    *gamedata.Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service, data *gamedata.Service) *Handler {
	return &Handler{service: service, data: data}
}

// RegisterRoutes registers the export routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	app.Post("/export", h.HandleExport)
}

// HandleExport writes the current snapshot to the database.
func (h *Handler) HandleExport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	gd, err := h.data.Data()
	if err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	summary, err := h.service.Export(c.Context(), gd)
	if err != nil {
		l.Error("Snapshot export failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(summary)
}
