// Package handlers wires the HTTP surface to the AI engines. Every
// handler is a method on Handler so tests can assemble an app from an
// in-memory store and fixed-clock engines without touching globals.
package handlers

import (
	"context"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"ai-service/database"
	"ai-service/insights"
	"ai-service/payments"
	"ai-service/predictor"
	"ai-service/registry"
)

type Handler struct {
	demand   *predictor.Engine
	payments *payments.Engine
	insights *insights.Engine
	registry *registry.Registry
	store    database.Store
	started  time.Time
}

func New(demand *predictor.Engine, pay *payments.Engine, ins *insights.Engine, reg *registry.Registry, store database.Store) *Handler {
	return &Handler{
		demand:   demand,
		payments: pay,
		insights: ins,
		registry: reg,
		store:    store,
		started:  time.Now().UTC(),
	}
}

// logRequest records the request outcome in ai_requests. Failures are
// logged and swallowed so bookkeeping never breaks a response.
func (h *Handler) logRequest(companyID int, requestType string, success bool, started time.Time) {
	elapsed := time.Since(started).Milliseconds()
	if err := h.store.LogRequest(context.Background(), companyID, requestType, success, elapsed); err != nil {
		log.Printf("Error logging %s request: %v", requestType, err)
	}
}

// ErrorHandler converts unhandled errors into the standard envelope.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	return c.Status(code).JSON(fiber.Map{
		"status":  "error",
		"message": err.Error(),
	})
}
