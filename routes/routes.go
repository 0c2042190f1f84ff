package routes

import (
	"github.com/gofiber/fiber/v2"

	"ai-service/handlers"
	"ai-service/middleware"
)

// SetupRoutes defines all the routes for the application. The health
// probes stay open; everything else sits behind the API key gate.
func SetupRoutes(app *fiber.App, h *handlers.Handler, apiKey, jwtSecret string) {
	// --- Public Routes ---
	app.Get("/", h.HandleRoot)
	app.Get("/health", h.HandleHealth)
	app.Get("/health/ready", h.HandleReady)

	// --- Protected Routes ---
	protected := app.Group("", middleware.Protected(apiKey, jwtSecret))

	protected.Post("/predict/demand", h.HandlePredictDemand)
	protected.Post("/recommend/payments", h.HandleRecommendPayments)
	protected.Post("/insights/business", h.HandleBusinessInsights)
	protected.Post("/query", h.HandleQuery)

	// Model lifecycle
	protected.Post("/train", h.HandleTrain)
	protected.Get("/status/:companyId", h.HandleModelStatus)

	// Debug helpers
	protected.Get("/debug/ping", h.HandleDebugPing)
	protected.Get("/debug/run_predictor", h.HandleDebugRunPredictor)
}
