package sampledata

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"ai-service/models"
)

// Config bounds the generated sales history. Shrinking the window is
// how callers simulate a business with too little history to model.
type Config struct {
	Start time.Time
	End   time.Time
	Items []string
}

// DefaultConfig covers 22 months of daily history for five items.
func DefaultConfig() Config {
	return Config{
		Start: time.Date(2023, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.October, 31, 0, 0, 0, 0, time.UTC),
		Items: []string{"item_a", "item_b", "item_c", "item_d", "item_e"},
	}
}

// Generator produces deterministic synthetic business data. Every
// method seeds a fresh source from the company id, so equal inputs
// always yield equal rows and no state is shared between calls.
type Generator struct {
	cfg Config
	now func() time.Time
}

// New builds a generator over the given window. A nil clock defaults
// to time.Now.
func New(cfg Config, now func() time.Time) *Generator {
	if now == nil {
		now = time.Now
	}
	return &Generator{cfg: cfg, now: now}
}

// Sales returns the daily per-item sales table for a company. Demand
// follows a Poisson base around 10 units with a yearly sine seasonal
// swing and multiplicative noise.
func (g *Generator) Sales(companyID int) []models.SalesRecord {
	rng := rand.New(rand.NewSource(int64(companyID)))
	var records []models.SalesRecord
	for d := g.cfg.Start; !d.After(g.cfg.End); d = d.AddDate(0, 0, 1) {
		for _, item := range g.cfg.Items {
			base := float64(poisson(rng, 10))
			seasonal := 1 + 0.2*math.Sin(2*math.Pi*float64(d.YearDay())/365)
			noise := 1 + rng.NormFloat64()*0.1
			qty := int(base * seasonal * noise)
			if qty < 0 {
				qty = 0
			}
			records = append(records, models.SalesRecord{
				Date:         d,
				ItemName:     item,
				QuantitySold: qty,
				Price:        50 + rng.Float64()*150,
			})
		}
	}
	return records
}

var paymentDayChoices = []int{7, 15, 30, 45, 60}
var paymentDayWeights = []float64{0.30, 0.30, 0.20, 0.15, 0.05}

// Payments returns ten historical payments for each of twenty
// customers. Roughly one payment in ten lands as delayed.
func (g *Generator) Payments(companyID int) []models.PaymentRecord {
	rng := rand.New(rand.NewSource(int64(companyID)))
	now := g.now()
	records := make([]models.PaymentRecord, 0, 200)
	for customer := 1; customer <= 20; customer++ {
		name := fmt.Sprintf("Customer %d", customer)
		for i := 0; i < 10; i++ {
			days := weightedChoice(rng, paymentDayChoices, paymentDayWeights)
			amount := 1000 + rng.Float64()*9000
			status := "completed"
			if rng.Float64() <= 0.1 {
				status = "delayed"
			}
			invoiceAge := 1 + rng.Intn(364)
			records = append(records, models.PaymentRecord{
				CustomerID:    customer,
				CustomerName:  name,
				Amount:        amount,
				PaymentDays:   days,
				PaymentStatus: status,
				InvoiceDate:   now.AddDate(0, 0, -invoiceAge),
			})
		}
	}
	return records
}

// Business returns twelve months of sales, expense, customer and
// inventory figures for the insight rules.
func (g *Generator) Business(companyID int) models.BusinessData {
	rng := rand.New(rand.NewSource(int64(companyID)))
	var data models.BusinessData
	for month := 1; month <= 12; month++ {
		sales := 50000 + rng.Float64()*150000
		gross := sales * (0.15 + rng.Float64()*0.2)
		data.Sales = append(data.Sales, models.MonthlySales{
			Month:        month,
			SalesAmount:  sales,
			GrossProfit:  gross,
			ProfitMargin: gross / sales * 100,
		})

		salaries := 20000 + rng.Float64()*30000
		rent := 5000 + rng.Float64()*10000
		utilities := 2000 + rng.Float64()*6000
		marketing := 3000 + rng.Float64()*9000
		other := 1000 + rng.Float64()*4000
		data.Expenses = append(data.Expenses, models.MonthlyExpenses{
			Month:         month,
			Salaries:      salaries,
			Rent:          rent,
			Utilities:     utilities,
			Marketing:     marketing,
			Other:         other,
			TotalExpenses: salaries + rent + utilities + marketing + other,
		})

		newCustomers := 10 + rng.Intn(40)
		repeat := 30 + rng.Intn(70)
		churned := 5 + rng.Intn(20)
		data.Customers = append(data.Customers, models.MonthlyCustomers{
			Month:           month,
			NewCustomers:    newCustomers,
			RepeatCustomers: repeat,
			RetentionRate:   float64(repeat) / float64(repeat+churned),
		})

		sold := 100 + rng.Intn(400)
		ordered := sold + 20 + rng.Intn(80)
		data.Inventory = append(data.Inventory, models.MonthlyInventory{
			Month:             month,
			ItemsSold:         sold,
			ItemsOrdered:      ordered,
			InventoryTurnover: float64(sold) / math.Max(float64(ordered), 1),
		})
	}
	return data
}

// Now exposes the generator's clock so downstream consumers share a
// single notion of "today".
func (g *Generator) Now() time.Time {
	return g.now()
}

// poisson draws from Poisson(lambda) by Knuth's product method.
func poisson(rng *rand.Rand, lambda float64) int {
	limit := math.Exp(-lambda)
	k := 0
	p := 1.0
	for {
		k++
		p *= rng.Float64()
		if p <= limit {
			return k - 1
		}
	}
}

// weightedChoice picks one of choices with the given probabilities,
// which must sum to 1.
func weightedChoice(rng *rand.Rand, choices []int, weights []float64) int {
	r := rng.Float64()
	var cum float64
	for i, w := range weights {
		cum += w
		if r < cum {
			return choices[i]
		}
	}
	return choices[len(choices)-1]
}
