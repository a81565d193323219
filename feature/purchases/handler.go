package purchases

import (
	"errors"

	"vapor-store/core/logger"
	"vapor-store/feature/catalog"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for purchase imports.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the purchase routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/purchases")
	group.Post("/import", h.HandleImport)
}

// HandleImport imports the XML document in the request body.
func (h *Handler) HandleImport(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	out, err := h.service.ImportPurchases(c.UserContext(), string(c.Body()))
	if err != nil {
		l.Error("Purchase import failed", zap.Error(err))
		return c.Status(statusFor(err)).JSON(fiber.Map{"error": err.Error()})
	}

	return c.SendString(out)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, catalog.ErrMalformedPayload):
		return fiber.StatusBadRequest
	case errors.Is(err, catalog.ErrUnknownPurchaseType),
		errors.Is(err, catalog.ErrMalformedDate),
		errors.Is(err, catalog.ErrDanglingReference):
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}
