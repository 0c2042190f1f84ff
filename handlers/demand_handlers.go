package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ai-service/models"
)

// HandlePredictDemand forecasts per-item demand for the next quarter and
// turns the forecasts into purchase recommendations.
// POST /predict/demand
func (h *Handler) HandlePredictDemand(c *fiber.Ctx) error {
	started := time.Now()

	var req models.DemandPredictionRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	budget := 0.0
	if req.Budget != nil {
		budget = *req.Budget
	}
	daysAhead := req.DaysAhead
	if daysAhead <= 0 {
		daysAhead = 90
	}

	res := h.demand.Predict(req.CompanyID, budget, daysAhead)
	recs := h.demand.Recommendations(res.Predictions, budget)
	if res.Predictions == nil {
		res.Predictions = []models.ItemForecast{}
	}
	if recs == nil {
		recs = []models.Recommendation{}
	}

	h.logRequest(req.CompanyID, "demand_prediction", true, started)

	return c.JSON(models.DemandPredictionResponse{
		Predictions:     res.Predictions,
		Recommendations: recs,
		Source:          res.Source,
		Timestamp:       time.Now().UTC(),
	})
}
