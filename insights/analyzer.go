// Package insights runs rule tables over monthly business data to
// produce findings, a scored health summary and answers to natural
// language questions.
package insights

import (
	"fmt"
	"log"
	"math"
	"time"

	"ai-service/models"
	"ai-service/sampledata"
	"ai-service/utils"
)

// Engine analyzes generated business data. The optional narrator
// rephrases query answers through the language model.
type Engine struct {
	gen      *sampledata.Generator
	now      func() time.Time
	narrator *Narrator
}

// New builds an engine over the generator. A nil clock shares the
// generator's clock; a nil narrator keeps answers deterministic.
func New(gen *sampledata.Generator, now func() time.Time, narrator *Narrator) *Engine {
	if now == nil {
		now = gen.Now
	}
	return &Engine{gen: gen, now: now, narrator: narrator}
}

// Insights evaluates every rule family over the company's data. Any
// failure degrades to the getting-started set.
func (e *Engine) Insights(companyID int) (out []models.Insight) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[insights] generation failed for company %d: %v", companyID, r)
			out = fallbackInsights()
		}
	}()

	data := e.gen.Business(companyID)
	out = append(out, profitInsights(data)...)
	out = append(out, expenseInsights(data)...)
	out = append(out, inventoryInsights(data)...)
	out = append(out, customerInsights(data)...)
	out = append(out, marketInsights(data)...)
	return out
}

// UpdateModel refreshes the analyzer for a company. The rule tables
// are static, so this always succeeds; it exists so the training
// sweep treats all three models uniformly.
func (e *Engine) UpdateModel(companyID int) error {
	return nil
}

func profitInsights(data models.BusinessData) []models.Insight {
	margin := avgMargin(data)
	switch {
	case margin < 20:
		return []models.Insight{{
			Type:               "profit_optimization",
			Title:              "Low Profit Margin Detected",
			Description:        fmt.Sprintf("Your average profit margin of %.1f%% is below optimal levels", margin),
			CurrentPerformance: fmt.Sprintf("Average margin: %.1f%%", margin),
			TargetPerformance:  "Target margin: 25-30%",
			Recommendations: []string{
				"Focus on promoting high-margin products",
				"Review supplier pricing",
				"Consider premium product lines",
				"Optimize product mix",
			},
			Priority:                 "high",
			ImpactPotential:          "medium",
			ImplementationDifficulty: "medium",
			ExpectedROI:              "15-25% margin improvement",
		}}
	case margin < 25:
		return []models.Insight{{
			Type:               "profit_optimization",
			Title:              "Moderate Profit Margin",
			Description:        "Room for profit margin improvement",
			CurrentPerformance: fmt.Sprintf("Average margin: %.1f%%", margin),
			Recommendations: []string{
				"Fine-tune product pricing",
				"Negotiate bulk purchase discounts",
				"Introduce premium variants",
			},
			Priority:        "medium",
			ImpactPotential: "medium",
			ExpectedROI:     "5-10% margin improvement",
		}}
	}
	return nil
}

func expenseInsights(data models.BusinessData) []models.Insight {
	var out []models.Insight
	sales := avgSales(data)
	ratio := avgExpenses(data) / sales * 100

	if ratio > 60 {
		out = append(out, models.Insight{
			Type:               "expense_control",
			Title:              "High Expense Ratio",
			Description:        fmt.Sprintf("Expenses are %.1f%% of sales, indicating poor cost control", ratio),
			CurrentPerformance: fmt.Sprintf("Expense ratio: %.1f%%", ratio),
			TargetPerformance:  "Target ratio: <50%",
			Recommendations: []string{
				"Audit and reduce unnecessary expenses",
				"Renegotiate fixed cost contracts",
				"Implement expense tracking system",
				"Consider outsourcing non-core functions",
			},
			Priority:        "high",
			ImpactPotential: "high",
			ExpectedROI:     "10-20% cost reduction",
		})
	}

	if avgSalaries(data) > sales*0.4 {
		out = append(out, models.Insight{
			Type:        "expense_control",
			Title:       "High Salary Expenses",
			Description: "Salary expenses are a significant portion of total costs",
			Recommendations: []string{
				"Review staff productivity",
				"Consider performance-based compensation",
				"Evaluate automation opportunities",
				"Cross-train employees for efficiency",
			},
			Priority:        "medium",
			ImpactPotential: "medium",
		})
	}
	return out
}

func inventoryInsights(data models.BusinessData) []models.Insight {
	turnover := avgTurnover(data)
	switch {
	case turnover < 6:
		return []models.Insight{{
			Type:               "inventory_management",
			Title:              "Slow Inventory Turnover",
			Description:        fmt.Sprintf("Inventory turns %.1f times per year, indicating slow movement", turnover),
			CurrentPerformance: fmt.Sprintf("Average turnover: %.1f", turnover),
			TargetPerformance:  "Target turnover: 6-8 times per year",
			Recommendations: []string{
				"Implement ABC analysis for inventory",
				"Create promotional campaigns for slow-moving items",
				"Optimize reorder quantities",
				"Consider just-in-time inventory management",
			},
			Priority:        "medium",
			ImpactPotential: "high",
			ExpectedROI:     "25% inventory cost reduction",
		}}
	case turnover > 10:
		return []models.Insight{{
			Type:        "inventory_management",
			Title:       "Excellent Inventory Turnover",
			Description: fmt.Sprintf("Inventory turns %.1f times per year - well optimized", turnover),
			Recommendations: []string{
				"Maintain current inventory practices",
				"Consider expanding product lines",
				"Monitor for potential stockouts",
				"Leverage vendor relationships",
			},
			Priority:        "low",
			ImpactPotential: "low",
		}}
	}
	return nil
}

func customerInsights(data models.BusinessData) []models.Insight {
	var out []models.Insight

	retention := avgRetention(data)
	if retention < 0.7 {
		out = append(out, models.Insight{
			Type:               "customer_retention",
			Title:              "Low Customer Retention",
			Description:        fmt.Sprintf("Customer retention rate of %s is below target", utils.FormatPercent(retention)),
			CurrentPerformance: fmt.Sprintf("Average retention: %s", utils.FormatPercent(retention)),
			TargetPerformance:  "Target retention: 80%+",
			Recommendations: []string{
				"Implement customer loyalty programs",
				"Improve customer service quality",
				"Gather customer feedback regularly",
				"Offer personalized recommendations",
				"Create customer success programs",
			},
			Priority:        "high",
			ImpactPotential: "high",
			ExpectedROI:     "20-30% revenue increase",
		})
	}

	if n := len(data.Customers); n > 3 {
		slope := float64(data.Customers[n-1].NewCustomers-data.Customers[0].NewCustomers) / float64(n)
		if slope < -2 {
			out = append(out, models.Insight{
				Type:        "customer_acquisition",
				Title:       "Declining Customer Acquisition",
				Description: "Customer acquisition is trending downward",
				Recommendations: []string{
					"Increase marketing efforts",
					"Leverage social media marketing",
					"Implement referral programs",
					"Review product-market fit",
					"Expand target market",
				},
				Priority:        "high",
				ImpactPotential: "high",
			})
		}
	}
	return out
}

func marketInsights(data models.BusinessData) []models.Insight {
	n := len(data.Sales)
	if n <= 6 {
		return nil
	}
	growth := (data.Sales[n-1].SalesAmount - data.Sales[0].SalesAmount) / data.Sales[0].SalesAmount * 100
	monthly := growth / float64(n)

	switch {
	case monthly > 5:
		return []models.Insight{{
			Type:        "market_opportunity",
			Title:       "Strong Growth Opportunity",
			Description: fmt.Sprintf("Sales growing at %.1f%% monthly", monthly),
			Recommendations: []string{
				"Scale marketing efforts",
				"Expand product offerings",
				"Consider new market segments",
				"Invest in inventory",
				"Hire additional staff",
			},
			Priority:        "high",
			ImpactPotential: "high",
		}}
	case monthly < -2:
		return []models.Insight{{
			Type:        "market_challenge",
			Title:       "Sales Decline Detected",
			Description: fmt.Sprintf("Sales declining at %.1f%% monthly", math.Abs(monthly)),
			Recommendations: []string{
				"Conduct market analysis",
				"Review competitive positioning",
				"Improve product quality",
				"Enhance customer experience",
				"Consider price adjustments",
			},
			Priority:        "urgent",
			ImpactPotential: "high",
		}}
	}
	return nil
}

// fallbackInsights is the getting-started set for businesses whose
// analysis failed or has no data behind it.
func fallbackInsights() []models.Insight {
	return []models.Insight{
		{
			Type:        "general",
			Title:       "Getting Started Guide",
			Description: "Begin your business journey with these foundational practices",
			Recommendations: []string{
				"Track all business transactions accurately",
				"Set up regular financial reporting",
				"Build relationships with suppliers",
				"Focus on customer satisfaction",
				"Plan cash flow carefully",
			},
			Priority:                 "high",
			ImpactPotential:          "medium",
			ImplementationDifficulty: "low",
			ExpectedROI:              "Improved business foundation",
		},
		{
			Type:        "data_collection",
			Title:       "Optimize Data Collection",
			Description: "Better data leads to better business insights",
			Recommendations: []string{
				"Use consistent data entry practices",
				"Categorize transactions properly",
				"Track customer interactions",
				"Monitor inventory levels regularly",
				"Record seasonal patterns",
			},
			Priority:        "medium",
			ImpactPotential: "high",
			ExpectedROI:     "Enhanced decision-making capabilities",
		},
	}
}

// --- Metric Averages ---

func avgMargin(d models.BusinessData) float64 {
	var sum float64
	for _, s := range d.Sales {
		sum += s.ProfitMargin
	}
	return sum / float64(len(d.Sales))
}

func avgSales(d models.BusinessData) float64 {
	var sum float64
	for _, s := range d.Sales {
		sum += s.SalesAmount
	}
	return sum / float64(len(d.Sales))
}

func avgExpenses(d models.BusinessData) float64 {
	var sum float64
	for _, e := range d.Expenses {
		sum += e.TotalExpenses
	}
	return sum / float64(len(d.Expenses))
}

func avgSalaries(d models.BusinessData) float64 {
	var sum float64
	for _, e := range d.Expenses {
		sum += e.Salaries
	}
	return sum / float64(len(d.Expenses))
}

func avgTurnover(d models.BusinessData) float64 {
	var sum float64
	for _, i := range d.Inventory {
		sum += i.InventoryTurnover
	}
	return sum / float64(len(d.Inventory))
}

func avgRetention(d models.BusinessData) float64 {
	var sum float64
	for _, c := range d.Customers {
		sum += c.RetentionRate
	}
	return sum / float64(len(d.Customers))
}
