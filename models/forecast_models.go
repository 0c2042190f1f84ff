package models

// --- Demand Forecasting ---

// ItemForecast is one item's demand outlook. The investment fields
// are only populated when a budget was supplied.
type ItemForecast struct {
	ItemName           string  `json:"item_name"`
	Demand30           int     `json:"predicted_demand_30d"`
	Demand60           int     `json:"predicted_demand_60d"`
	Demand90           int     `json:"predicted_demand_90d"`
	AvgDailyDemand     float64 `json:"avg_daily_demand"`
	Confidence         float64 `json:"confidence"`
	Reason             string  `json:"reason"`
	InvestmentRequired float64 `json:"investment_required,omitempty"`
	ExpectedProfit     float64 `json:"expected_profit,omitempty"`
	ROIPercentage      float64 `json:"roi_percentage,omitempty"`
}

// Recommendation is a composed purchasing suggestion derived from the
// ranked forecasts.
type Recommendation struct {
	Type            string         `json:"type"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	Items           []ItemForecast `json:"items,omitempty"`
	TotalInvestment float64        `json:"total_investment,omitempty"`
	ExpectedProfit  float64        `json:"expected_profit,omitempty"`
	ROI             float64        `json:"roi,omitempty"`
	Priority        string         `json:"priority,omitempty"`
	Action          string         `json:"action,omitempty"`
}
