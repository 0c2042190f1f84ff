package models

import "time"

// --- Business Insights ---

// Insight is one rule-based finding over the monthly business data.
// The optional fields are only set by rules that have a concrete
// target or effort estimate.
type Insight struct {
	Type                     string   `json:"type"`
	Title                    string   `json:"title"`
	Description              string   `json:"description"`
	CurrentPerformance       string   `json:"current_performance,omitempty"`
	TargetPerformance        string   `json:"target_performance,omitempty"`
	Recommendations          []string `json:"recommendations"`
	Priority                 string   `json:"priority"`
	ImpactPotential          string   `json:"impact_potential,omitempty"`
	ImplementationDifficulty string   `json:"implementation_difficulty,omitempty"`
	ExpectedROI              string   `json:"expected_roi,omitempty"`
}

// KeyMetrics are the averages behind a health summary.
type KeyMetrics struct {
	AverageMonthlySales   float64 `json:"average_monthly_sales"`
	AverageProfitMargin   float64 `json:"average_profit_margin"`
	ExpenseRatio          float64 `json:"expense_ratio"`
	CustomerRetentionRate float64 `json:"customer_retention_rate"`
	DataPointsAnalyzed    int     `json:"data_points_analyzed"`
}

// BusinessSummary is the scored health report for a company.
type BusinessSummary struct {
	OverallHealth      string     `json:"overall_health"`
	HealthScore        int        `json:"health_score"`
	KeyMetrics         KeyMetrics `json:"key_metrics"`
	KeyRecommendations []string   `json:"key_recommendations"`
	Summary            string     `json:"summary"`
	AssessmentDate     time.Time  `json:"assessment_date"`
	Note               string     `json:"note,omitempty"`
}

// QueryAnswer is a routed answer to a natural-language business
// question. Source reports whether the text came from the rule engine
// or was rephrased by the language model.
type QueryAnswer struct {
	Answer      string   `json:"answer"`
	Confidence  float64  `json:"confidence"`
	DataSources []string `json:"data_sources"`
	Source      string   `json:"source"`
}
