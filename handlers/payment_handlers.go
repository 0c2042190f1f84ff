package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"ai-service/models"
)

// HandleRecommendPayments ranks customers by payment urgency and attaches
// a portfolio-level risk assessment.
// POST /recommend/payments
func (h *Handler) HandleRecommendPayments(c *fiber.Ctx) error {
	started := time.Now()

	var req models.PaymentRecommendationRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	recs := h.payments.Recommend(req.CompanyID)
	if recs == nil {
		recs = []models.CustomerRecommendation{}
	}
	risk := h.payments.AssessRisk(req.CompanyID)

	h.logRequest(req.CompanyID, "payment_recommendation", true, started)

	return c.JSON(models.PaymentRecommendationResponse{
		Recommendations: recs,
		RiskAssessment:  risk,
		Timestamp:       time.Now().UTC(),
	})
}
