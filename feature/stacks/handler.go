package stacks

import (
	"errors"

	"stack-manager/core/logger"
	"stack-manager/core/reconcile"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stack maintenance.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stack routes.
func (h *Handler) RegisterRoutes(app fiber.Router) {
	group := app.Group("/stacks")
	group.Get("/plan/:step", h.HandlePlan)
	group.Post("/run/:step", h.HandleRun)
}

// HandlePlan computes plans without applying them.
// @Summary Plan Stack Maintenance
// @Description Fetches a fresh snapshot and returns the planned actions of a step ("all" plans every step against the same state).
// @Tags stacks
// @Produce json
// @Param step path string true "consolidate, prune, primary, audit or all"
// @Success 200 {object} map[string]interface{} "Plans"
// @Failure 400 {object} map[string]string "Unknown step"
// @Failure 500 {object} map[string]string "Internal Server Error"
// @Router /stacks/plan/{step} [get]
func (h *Handler) HandlePlan(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	steps, err := ParseSteps(c.Params("step"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	plans := make([]*reconcile.Plan, 0, len(steps))
	for _, step := range steps {
		plan, err := h.service.Plan(c.Context(), step)
		if err != nil {
			l.Error("Planning failed", zap.String("step", string(step)), zap.Error(err))
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		plans = append(plans, plan)
	}

	return c.JSON(fiber.Map{"plans": plans})
}

// HandleRun plans and applies one step or the whole pipeline.
// @Summary Run Stack Maintenance
// @Description Plans and applies a step ("all" runs the pipeline). Pass dry_run=true to skip mutations.
// @Tags stacks
// @Produce json
// @Param step path string true "consolidate, prune, primary, audit or all"
// @Param dry_run query boolean false "Plan only"
// @Success 200 {object} map[string]interface{} "Step results"
// @Failure 400 {object} map[string]string "Unknown step"
// @Failure 409 {object} map[string]string "Run in progress"
// @Failure 500 {object} map[string]interface{} "Partial results and error"
// @Router /stacks/run/{step} [post]
func (h *Handler) HandleRun(c *fiber.Ctx) error {
	l := logger.WithRayID(h.service.logger, c)

	steps, err := ParseSteps(c.Params("step"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	opts := reconcile.Options{
		DryRun:    c.Query("dry_run") == "true",
		Confirmed: true,
	}

	l.Info("Starting run", zap.String("step", c.Params("step")), zap.Bool("dry_run", opts.DryRun))
	results, err := h.service.Run(c.Context(), steps, opts, nil)
	if errors.Is(err, ErrRunInProgress) {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{"error": err.Error()})
	}
	if err != nil {
		l.Error("Run failed", zap.Error(err))
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error":   err.Error(),
			"results": results,
		})
	}

	return c.JSON(fiber.Map{"results": results})
}
