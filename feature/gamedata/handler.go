package gamedata

import (
	"errors"

	"arkdata/core/logger"
	"arkdata/core/source"
	"arkdata/feature/gamedata/models"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for game data lookups.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the game data routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	ops := app.Group("/operators")
	ops.Get("/", h.HandleListOperators)
	ops.Get("/:id", h.HandleGetOperator)

	items := app.Group("/items")
	items.Get("/", h.HandleListItems)
	items.Get("/:id", h.HandleGetItem)

	app.Get("/rooms/:type", h.HandleGetRoom)
	app.Post("/reload", h.HandleReload)
}

func (h *Handler) snapshot(c *fiber.Ctx) (*GameData, error) {
	gd, err := h.service.Data()
	if err != nil {
		return nil, c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return gd, nil
}

// HandleListOperators lists every operator, or finds one by display name
// when the "name" query parameter is set.
func (h *Handler) HandleListOperators(c *fiber.Ctx) error {
	gd, err := h.snapshot(c)
	if gd == nil {
		return err
	}
	if name := c.Query("name"); name != "" {
		op := gd.FindOperator(name)
		if op == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no operator named " + name,
			})
		}
		return c.JSON(op)
	}
	return c.JSON(gd.Operators())
}

// HandleGetOperator returns a single operator by id.
func (h *Handler) HandleGetOperator(c *fiber.Ctx) error {
	gd, err := h.snapshot(c)
	if gd == nil {
		return err
	}
	op := gd.Operator(c.Params("id"))
	if op == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no operator with id " + c.Params("id"),
		})
	}
	return c.JSON(op)
}

// HandleListItems lists every item, or finds one by name when the "name"
// query parameter is set.
func (h *Handler) HandleListItems(c *fiber.Ctx) error {
	gd, err := h.snapshot(c)
	if gd == nil {
		return err
	}
	if name := c.Query("name"); name != "" {
		item := gd.FindItem(name)
		if item == nil {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"error": "no item named " + name,
			})
		}
		return c.JSON(item)
	}
	return c.JSON(gd.Items())
}

// HandleGetItem returns a single item by id.
func (h *Handler) HandleGetItem(c *fiber.Ctx) error {
	gd, err := h.snapshot(c)
	if gd == nil {
		return err
	}
	item := gd.Item(c.Params("id"))
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no item with id " + c.Params("id"),
		})
	}
	return c.JSON(item)
}

// HandleGetRoom returns a base room definition by room type.
func (h *Handler) HandleGetRoom(c *fiber.Ctx) error {
	gd, err := h.snapshot(c)
	if gd == nil {
		return err
	}
	room, ok := gd.Room(models.RoomType(c.Params("type")))
	if !ok {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": "no room of type " + c.Params("type"),
		})
	}
	return c.JSON(room)
}

// HandleReload fetches a fresh snapshot from the configured source.
func (h *Handler) HandleReload(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	if err := h.service.Load(c.Context()); err != nil {
		l.Error("Game data reload failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, source.ErrNotFound) {
			status = fiber.StatusBadGateway
		}
		return c.Status(status).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(fiber.Map{"status": "reloaded"})
}
