package predictor

import (
	"math"

	"ai-service/models"
)

// Starter catalog offered to businesses without usable history.
var fallbackItems = []string{
	"Coffee Beans (Premium)",
	"Hand Sanitizer Bottles",
	"Reusable Shopping Bags",
	"Energy-efficient Light Bulbs",
	"Organic Tea Collection",
}

// Fallback produces the fixed industry forecast used when history is
// too thin to model. Base demand steps up through the catalog while
// confidence steps down to a floor of 0.4.
func (e *Engine) Fallback(budget float64) Result {
	preds := make([]models.ItemForecast, 0, len(fallbackItems))
	for i, item := range fallbackItems {
		base := 50 + i*25
		preds = append(preds, models.ItemForecast{
			ItemName:       item,
			Demand30:       base,
			Demand60:       base * 2,
			Demand90:       base * 3,
			AvgDailyDemand: float64(base) / 30,
			Confidence:     math.Max(0.4, 0.6-float64(i)*0.1),
			Reason:         "Based on industry trends and market analysis",
		})
	}
	if budget > 0 {
		preds = allocateBudget(preds, budget, fallbackAssumptions)
	}
	return Result{Predictions: preds, Source: SourceFallback}
}
