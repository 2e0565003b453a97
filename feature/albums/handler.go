package albums

import (
	"errors"

	"stack-manager/core/logger"
	"stack-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for album ordering.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the album routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/albums/order")
	group.Get("/plan", h.HandlePlan)
	group.Post("/run", h.HandleRun)
}

// HandlePlan returns the albums that would be reordered.
// @Summary Plan Album Order
// @Description Lists the albums whose display order differs from the requested one.
// @Tags albums
// @Produce json
// @Param order query string false "asc (default) or desc"
// @Success 200 {object} reconcile.Plan
// @Failure 400 {object} map[string]string "Invalid order"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /albums/order/plan [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, err := h.service.Plan(c.Context(), c.Query("order"))
	if errors.Is(err, ErrInvalidOrder) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Album order planning failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(plan)
}

// HandleRun reorders the albums.
// @Summary Apply Album Order
// @Description Sets the display order of every album that differs from the requested one.
// @Tags albums
// @Produce json
// @Param order query string false "asc (default) or desc"
// @Success 200 {object} map[string]interface{} "Plan and executed count"
// @Failure 400 {object} map[string]string "Invalid order"
// @Failure 409 {object} map[string]string "Run in progress"
// @Failure 500 {object} map[string]interface{} "Error and partial count"
// @Router /albums/order/run [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	plan, executed, err := h.service.Run(c.Context(), c.Query("order"), reconcile.Options{Confirmed: true})
	switch {
	case errors.Is(err, ErrInvalidOrder):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	case errors.Is(err, ErrRunInProgress):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	case err != nil:
		l.Error("Album order run failed", zap.Int("executed", executed), zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":    err.Error(),
			"executed": executed,
		})
	}

	return c.JSON(fiber.Map{"plan": plan, "executed": executed})
}
