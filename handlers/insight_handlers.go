package handlers

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"ai-service/models"
)

// HandleBusinessInsights returns the generated insight list together with
// the scored business health summary.
// POST /insights/business
func (h *Handler) HandleBusinessInsights(c *fiber.Ctx) error {
	started := time.Now()

	var req models.BusinessInsightRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}

	list := h.insights.Insights(req.CompanyID)
	if list == nil {
		list = []models.Insight{}
	}
	summary := h.insights.Summary(req.CompanyID)

	h.logRequest(req.CompanyID, "business_insights", true, started)

	return c.JSON(models.BusinessInsightResponse{
		Insights:  list,
		Summary:   summary,
		Timestamp: time.Now().UTC(),
	})
}

// HandleQuery answers a natural-language question about the business.
// The narrative pass is bounded so a slow Gemini call degrades to the
// deterministic answer instead of hanging the request.
// POST /query
func (h *Handler) HandleQuery(c *fiber.Ctx) error {
	started := time.Now()

	var req models.BusinessQueryRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Invalid request body",
		})
	}
	if strings.TrimSpace(req.Query) == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"status":  "error",
			"message": "Query must not be empty",
		})
	}

	ctx, cancel := context.WithTimeout(c.Context(), 15*time.Second)
	defer cancel()

	ans := h.insights.QueryWithNarrative(ctx, req.CompanyID, req.Query)

	h.logRequest(req.CompanyID, "business_query", true, started)

	return c.JSON(models.QueryResponse{
		Response:    ans.Answer,
		Confidence:  ans.Confidence,
		DataSources: ans.DataSources,
		Source:      ans.Source,
		Timestamp:   time.Now().UTC(),
	})
}
