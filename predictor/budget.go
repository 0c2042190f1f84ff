package predictor

import (
	"sort"

	"ai-service/models"
)

// Assumptions are the unit-cost and margin constants that turn
// demand into investment figures. The model and fallback branches
// carry different constants on purpose: modeled items price off the
// historical catalog, industry-default items off a conservative one.
type Assumptions struct {
	UnitCost float64
	Margin   float64
}

var (
	modelAssumptions    = Assumptions{UnitCost: 100, Margin: 0.30}
	fallbackAssumptions = Assumptions{UnitCost: 150, Margin: 0.25}
)

// minPartialOrder is the smallest leftover budget worth a partial
// allocation.
const minPartialOrder = 1000

// allocateBudget prices every forecast, ranks by ROI and keeps items
// in order while they fit the budget. The first item that does not
// fit may come back partially funded if at least minPartialOrder
// remains; nothing after it is considered.
func allocateBudget(preds []models.ItemForecast, budget float64, a Assumptions) []models.ItemForecast {
	for i := range preds {
		preds[i].InvestmentRequired = float64(preds[i].Demand90) * a.UnitCost
		preds[i].ExpectedProfit = preds[i].InvestmentRequired * a.Margin
		preds[i].ROIPercentage = a.Margin * 100
	}

	// Every item shares the branch margin, so ROI ties across the
	// board and the stable sort preserves the incoming order.
	sort.SliceStable(preds, func(i, j int) bool {
		return preds[i].ROIPercentage > preds[j].ROIPercentage
	})

	var total float64
	accepted := make([]models.ItemForecast, 0, len(preds))
	for _, p := range preds {
		if total+p.InvestmentRequired <= budget {
			accepted = append(accepted, p)
			total += p.InvestmentRequired
			continue
		}
		if remaining := budget - total; remaining >= minPartialOrder {
			p.InvestmentRequired = remaining
			p.Demand90 = int(remaining / a.UnitCost)
			p.ExpectedProfit = remaining * a.Margin
			accepted = append(accepted, p)
		}
		break
	}
	return accepted
}
