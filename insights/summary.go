package insights

import (
	"fmt"
	"log"
	"strings"
	"time"

	"ai-service/models"
)

// Summary reports scored business health for a company. Failures
// degrade to the starting-out baseline.
func (e *Engine) Summary(companyID int) (s models.BusinessSummary) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[insights] summary failed for company %d: %v", companyID, r)
			s = e.fallbackSummary()
		}
	}()

	return buildSummary(e.gen.Business(companyID), e.now().UTC())
}

// buildSummary scores profit margin, expense control, retention and
// growth at up to 25 points each, then bands the total into a health
// status. Growth only scores with more than three months of data.
func buildSummary(data models.BusinessData, at time.Time) models.BusinessSummary {
	sales := avgSales(data)
	margin := avgMargin(data)
	ratio := avgExpenses(data) / sales * 100
	retention := avgRetention(data)

	score := 0
	switch {
	case margin >= 25:
		score += 25
	case margin >= 20:
		score += 20
	case margin >= 15:
		score += 15
	default:
		score += 10
	}

	switch {
	case ratio <= 50:
		score += 25
	case ratio <= 60:
		score += 20
	case ratio <= 70:
		score += 15
	default:
		score += 10
	}

	switch {
	case retention >= 0.8:
		score += 25
	case retention >= 0.7:
		score += 20
	case retention >= 0.6:
		score += 15
	default:
		score += 10
	}

	if n := len(data.Sales); n > 3 {
		growth := (data.Sales[n-1].SalesAmount - data.Sales[0].SalesAmount) / data.Sales[0].SalesAmount
		switch {
		case growth >= 0.2:
			score += 25
		case growth >= 0.1:
			score += 20
		case growth >= 0.05:
			score += 15
		default:
			score += 10
		}
	}

	var status string
	switch {
	case score >= 80:
		status = "excellent"
	case score >= 65:
		status = "good"
	case score >= 50:
		status = "fair"
	case score >= 35:
		status = "poor"
	default:
		status = "critical"
	}

	var recs []string
	if margin < 20 {
		recs = append(recs, "Focus on improving profit margins")
	}
	if ratio > 60 {
		recs = append(recs, "Implement cost control measures")
	}
	if retention < 0.7 {
		recs = append(recs, "Enhance customer retention strategies")
	}

	topRecs := recs
	if len(topRecs) > 3 {
		topRecs = topRecs[:3]
	}

	return models.BusinessSummary{
		OverallHealth: status,
		HealthScore:   score,
		KeyMetrics: models.KeyMetrics{
			AverageMonthlySales:   sales,
			AverageProfitMargin:   margin,
			ExpenseRatio:          ratio,
			CustomerRetentionRate: retention,
			DataPointsAnalyzed:    len(data.Sales),
		},
		KeyRecommendations: recs,
		Summary: fmt.Sprintf("Your business health score is %d/100 (%s). Focus on %s for improvement.",
			score, status, strings.Join(topRecs, ", ")),
		AssessmentDate: at,
	}
}

// fallbackSummary is the baseline report for businesses without
// analyzable history.
func (e *Engine) fallbackSummary() models.BusinessSummary {
	return models.BusinessSummary{
		OverallHealth: "starting",
		HealthScore:   50,
		KeyMetrics: models.KeyMetrics{
			AverageMonthlySales:   50000.0,
			AverageProfitMargin:   20.0,
			ExpenseRatio:          65.0,
			CustomerRetentionRate: 0.65,
			DataPointsAnalyzed:    0,
		},
		KeyRecommendations: []string{
			"Establish consistent data collection practices",
			"Focus on building customer relationships",
			"Implement basic expense tracking",
		},
		Summary:        "Your business is in the initial phase. Focus on building a strong foundation with consistent data entry and customer relationship management.",
		AssessmentDate: e.now().UTC(),
		Note:           "Initial assessment based on general business practices",
	}
}
