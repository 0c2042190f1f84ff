package predictor

import (
	"time"

	"ai-service/models"
)

// applySeasonal scales the 90-day figure by the current calendar
// season: holiday months push it up 30%, summer months pull it down
// 10%. The shorter windows stay untouched.
func applySeasonal(preds []models.ItemForecast, now time.Time) []models.ItemForecast {
	month := now.Month()
	for i := range preds {
		switch {
		case month == time.November || month == time.December:
			preds[i].Demand90 = int(float64(preds[i].Demand90) * 1.3)
		case month >= time.June && month <= time.August:
			preds[i].Demand90 = int(float64(preds[i].Demand90) * 0.9)
		}
	}
	return preds
}
