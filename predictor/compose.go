package predictor

import (
	"fmt"
	"sort"
	"time"

	"ai-service/models"
	"ai-service/utils"
)

// Recommendations composes purchasing advice from a forecast list.
// With a budget it summarizes the top three items by confidence into
// an allocation plan; without one it suggests stock levels. From
// October onward a holiday preparation note rides along.
func (e *Engine) Recommendations(preds []models.ItemForecast, budget float64) []models.Recommendation {
	if len(preds) == 0 {
		return nil
	}

	top := topByConfidence(preds, 3)
	var recs []models.Recommendation

	if budget > 0 {
		var investment, profit, roi float64
		for _, p := range top {
			investment += p.InvestmentRequired
			profit += p.ExpectedProfit
			roi += p.ROIPercentage
		}
		if investment > 0 {
			recs = append(recs, models.Recommendation{
				Type:            "budget_allocation",
				Title:           fmt.Sprintf("Optimal Budget Allocation for Rs %s", utils.FormatAmount(budget)),
				Description:     fmt.Sprintf("Focus on top %d high-confidence items for maximum ROI", len(top)),
				Items:           top,
				TotalInvestment: investment,
				ExpectedProfit:  profit,
				ROI:             roi / float64(len(top)),
			})
		}
	} else {
		recs = append(recs, models.Recommendation{
			Type:        "stock_recommendation",
			Title:       "Recommended Stock Levels",
			Description: "Based on predicted demand, stock these items for the next 90 days",
			Items:       top,
			Priority:    "high",
		})
	}

	if m := e.now().Month(); m >= time.October && m <= time.December {
		recs = append(recs, models.Recommendation{
			Type:        "seasonal_prep",
			Title:       "Holiday Season Preparation",
			Description: "Increase stock by 30-40% for holiday demand",
			Action:      "Consider bulk purchasing for high-demand items",
		})
	}
	return recs
}

func topByConfidence(preds []models.ItemForecast, n int) []models.ItemForecast {
	top := make([]models.ItemForecast, len(preds))
	copy(top, preds)
	sort.SliceStable(top, func(i, j int) bool {
		return top[i].Confidence > top[j].Confidence
	})
	if len(top) > n {
		top = top[:n]
	}
	return top
}
