package insights

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-service/models"
	"ai-service/sampledata"
)

func fixedClock() time.Time {
	return time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC)
}

func newEngine() *Engine {
	gen := sampledata.New(sampledata.DefaultConfig(), fixedClock)
	return New(gen, nil, nil)
}

func flat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func flatInt(v, n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = v
	}
	return out
}

// build assembles monthly data where the rules see exactly the given
// averages: flat margin, expenses, salaries, retention and turnover,
// with sales and new-customer series spelled out per month.
func build(sales []float64, margin, expenses, salaries, retention, turnover float64, customers []int) models.BusinessData {
	var d models.BusinessData
	for i := range sales {
		d.Sales = append(d.Sales, models.MonthlySales{
			Month:        i + 1,
			SalesAmount:  sales[i],
			GrossProfit:  sales[i] * margin / 100,
			ProfitMargin: margin,
		})
		d.Expenses = append(d.Expenses, models.MonthlyExpenses{
			Month:         i + 1,
			Salaries:      salaries,
			TotalExpenses: expenses,
		})
		d.Customers = append(d.Customers, models.MonthlyCustomers{
			Month:         i + 1,
			NewCustomers:  customers[i],
			RetentionRate: retention,
		})
		d.Inventory = append(d.Inventory, models.MonthlyInventory{
			Month:             i + 1,
			InventoryTurnover: turnover,
		})
	}
	return d
}

func healthyData() models.BusinessData {
	return build(flat(100000, 12), 30, 34000, 20000, 0.85, 8, flatInt(30, 12))
}

func titles(insights []models.Insight) []string {
	out := make([]string, 0, len(insights))
	for _, in := range insights {
		out = append(out, in.Title)
	}
	return out
}

func TestHealthyBusinessNoFindings(t *testing.T) {
	all := append(profitInsights(healthyData()), expenseInsights(healthyData())...)
	all = append(all, inventoryInsights(healthyData())...)
	all = append(all, customerInsights(healthyData())...)
	all = append(all, marketInsights(healthyData())...)
	assert.Empty(t, all)
}

func TestLowProfitMargin(t *testing.T) {
	d := build(flat(100000, 12), 15, 34000, 20000, 0.85, 8, flatInt(30, 12))
	got := profitInsights(d)

	require.Len(t, got, 1)
	in := got[0]
	assert.Equal(t, "Low Profit Margin Detected", in.Title)
	assert.Equal(t, "Your average profit margin of 15.0% is below optimal levels", in.Description)
	assert.Equal(t, "Average margin: 15.0%", in.CurrentPerformance)
	assert.Equal(t, "Target margin: 25-30%", in.TargetPerformance)
	assert.Equal(t, "high", in.Priority)
	assert.Equal(t, "medium", in.ImplementationDifficulty)
	assert.Equal(t, "15-25% margin improvement", in.ExpectedROI)
	assert.Len(t, in.Recommendations, 4)
}

func TestModerateProfitMargin(t *testing.T) {
	d := build(flat(100000, 12), 22, 34000, 20000, 0.85, 8, flatInt(30, 12))
	got := profitInsights(d)

	require.Len(t, got, 1)
	in := got[0]
	assert.Equal(t, "Moderate Profit Margin", in.Title)
	assert.Equal(t, "medium", in.Priority)
	assert.Empty(t, in.TargetPerformance)
	assert.Empty(t, in.ImplementationDifficulty)
	assert.Len(t, in.Recommendations, 3)
}

func TestExpenseRules(t *testing.T) {
	// 70% ratio and salaries above 40% of sales trip both rules.
	d := build(flat(100000, 12), 30, 70000, 45000, 0.85, 8, flatInt(30, 12))
	got := expenseInsights(d)

	require.Len(t, got, 2)
	assert.Equal(t, "High Expense Ratio", got[0].Title)
	assert.Equal(t, "Expenses are 70.0% of sales, indicating poor cost control", got[0].Description)
	assert.Equal(t, "Target ratio: <50%", got[0].TargetPerformance)
	assert.Equal(t, "High Salary Expenses", got[1].Title)
	assert.Equal(t, "medium", got[1].Priority)
}

func TestInventoryRules(t *testing.T) {
	slow := inventoryInsights(build(flat(100000, 12), 30, 34000, 20000, 0.85, 4, flatInt(30, 12)))
	require.Len(t, slow, 1)
	assert.Equal(t, "Slow Inventory Turnover", slow[0].Title)
	assert.Equal(t, "Inventory turns 4.0 times per year, indicating slow movement", slow[0].Description)
	assert.Equal(t, "25% inventory cost reduction", slow[0].ExpectedROI)

	fast := inventoryInsights(build(flat(100000, 12), 30, 34000, 20000, 0.85, 11, flatInt(30, 12)))
	require.Len(t, fast, 1)
	assert.Equal(t, "Excellent Inventory Turnover", fast[0].Title)
	assert.Equal(t, "Inventory turns 11.0 times per year - well optimized", fast[0].Description)
	assert.Equal(t, "low", fast[0].Priority)
}

func TestCustomerRules(t *testing.T) {
	low := customerInsights(build(flat(100000, 12), 30, 34000, 20000, 0.65, 8, flatInt(30, 12)))
	require.Len(t, low, 1)
	assert.Equal(t, "Low Customer Retention", low[0].Title)
	assert.Equal(t, "Customer retention rate of 65.0% is below target", low[0].Description)
	assert.Equal(t, "Target retention: 80%+", low[0].TargetPerformance)
	assert.Len(t, low[0].Recommendations, 5)

	// First month 40, last month 10: slope -2.5 per month.
	declining := flatInt(40, 12)
	declining[11] = 10
	trend := customerInsights(build(flat(100000, 12), 30, 34000, 20000, 0.85, 8, declining))
	require.Len(t, trend, 1)
	assert.Equal(t, "Declining Customer Acquisition", trend[0].Title)
}

func TestMarketRules(t *testing.T) {
	growing := flat(50000, 12)
	growing[11] = 100000
	up := marketInsights(build(growing, 30, 34000, 20000, 0.85, 8, flatInt(30, 12)))
	require.Len(t, up, 1)
	assert.Equal(t, "Strong Growth Opportunity", up[0].Title)
	assert.Equal(t, "Sales growing at 8.3% monthly", up[0].Description)

	shrinking := flat(100000, 12)
	shrinking[11] = 60000
	down := marketInsights(build(shrinking, 30, 34000, 20000, 0.85, 8, flatInt(30, 12)))
	require.Len(t, down, 1)
	assert.Equal(t, "Sales Decline Detected", down[0].Title)
	assert.Equal(t, "Sales declining at 3.3% monthly", down[0].Description)
	assert.Equal(t, "urgent", down[0].Priority)
}

func TestInsightsOverGeneratedData(t *testing.T) {
	e := newEngine()
	got := e.Insights(1)

	// Generated turnover is a per-month ratio below one, so the slow
	// turnover rule always fires.
	assert.Contains(t, titles(got), "Slow Inventory Turnover")
	assert.Equal(t, got, e.Insights(1))
}

func TestFallbackInsights(t *testing.T) {
	got := fallbackInsights()

	require.Len(t, got, 2)
	assert.Equal(t, "Getting Started Guide", got[0].Title)
	assert.Equal(t, "general", got[0].Type)
	assert.Equal(t, "low", got[0].ImplementationDifficulty)
	assert.Equal(t, "Optimize Data Collection", got[1].Title)
	assert.Len(t, got[1].Recommendations, 5)
}
