package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// HandleRoot identifies the service.
// GET /
func (h *Handler) HandleRoot(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"message": "AI Business Management Service is running",
		"version": "1.0.0",
	})
}

// HandleHealth is the liveness probe.
// GET /health
func (h *Handler) HandleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "healthy",
		"timestamp": time.Now().UTC(),
	})
}

// HandleReady reports dependency health. The engines work from generated
// data when the database is down, so a failed ping degrades the status
// without failing the probe.
// GET /health/ready
func (h *Handler) HandleReady(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 3*time.Second)
	defer cancel()

	status := "ready"
	checks := fiber.Map{"database": "ok"}
	if err := h.store.Ping(ctx); err != nil {
		status = "degraded"
		checks["database"] = err.Error()
	}

	return c.JSON(fiber.Map{
		"status":    status,
		"checks":    checks,
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now().UTC(),
	})
}

// HandleDebugPing checks service responsiveness.
// GET /debug/ping
func (h *Handler) HandleDebugPing(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":    "ok",
		"timestamp": time.Now().UTC(),
	})
}

// HandleDebugRunPredictor runs the demand engine's data fetch without the
// full model pass to isolate failures.
// GET /debug/run_predictor
func (h *Handler) HandleDebugRunPredictor(c *fiber.Ctx) error {
	companyID := c.QueryInt("company_id", 1)

	sample := h.demand.SampleRows(companyID, 10)

	return c.JSON(fiber.Map{
		"success":      true,
		"sample_count": len(sample),
		"sample":       sample,
	})
}
