package games

import (
	"errors"

	"vapor-store/core/logger"
	"vapor-store/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for game imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the game routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/games")
	group.Post("/import", h.HandleImport)
}

// HandleImport imports the JSON array in the request body and returns the
// plain-text report.
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.ImportGames(c.UserContext(), string(c.Body()))
	if err != nil {
		l.Error("Game import failed", zap.Error(err))
		status := fiber.StatusInternalServerError
		if errors.Is(err, catalog.ErrMalformedPayload) {
			status = fiber.StatusBadRequest
		}
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendString(out)
}
