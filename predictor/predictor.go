package predictor

import (
	"errors"
	"log"
	"math"
	"sort"
	"time"

	"ai-service/forest"
	"ai-service/models"
	"ai-service/sampledata"
)

// Source labels which branch produced a forecast.
const (
	SourceModel    = "model"
	SourceFallback = "fallback"
)

const (
	minPredictRows = 10
	minItemRows    = 5
	minTrainRows   = 30
	testFraction   = 0.2
	defaultHorizon = 90
)

// ErrInsufficientData is returned by Train when a company has too
// little sales history to fit per-item models.
var ErrInsufficientData = errors.New("insufficient sales history to train")

// Result carries the forecast list and the branch that produced it.
type Result struct {
	Predictions []models.ItemForecast
	Source      string
}

// Engine predicts per-item demand from generated sales history. It
// holds no per-company state; every call rebuilds from the generator.
type Engine struct {
	gen *sampledata.Generator
	now func() time.Time
}

// New builds an engine over the generator. A nil clock shares the
// generator's clock.
func New(gen *sampledata.Generator, now func() time.Time) *Engine {
	if now == nil {
		now = gen.Now
	}
	return &Engine{gen: gen, now: now}
}

// Predict forecasts demand for each item over the horizon, with an
// optional budget (zero means none) that filters the list down to an
// affordable allocation. Failures never propagate: companies with
// thin history get the industry fallback, and any panic inside the
// pipeline degrades to the same fallback.
func (e *Engine) Predict(companyID int, budget float64, daysAhead int) (res Result) {
	if daysAhead <= 0 {
		daysAhead = defaultHorizon
	}
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[predict] pipeline failed for company %d: %v", companyID, r)
			res = e.Fallback(budget)
		}
	}()

	sales := e.gen.Sales(companyID)
	if len(sales) < minPredictRows {
		return e.Fallback(budget)
	}

	preds := e.fit(sales, daysAhead)
	preds = applySeasonal(preds, e.now())
	if budget > 0 {
		preds = allocateBudget(preds, budget, modelAssumptions)
	}
	return Result{Predictions: preds, Source: SourceModel}
}

// Train fits the per-item models for a company. The models themselves
// are rebuilt on every Predict, so training here is a readiness check
// plus a full fit to surface data problems early.
func (e *Engine) Train(companyID int) error {
	sales := e.gen.Sales(companyID)
	if len(sales) < minTrainRows {
		return ErrInsufficientData
	}
	e.fit(sales, defaultHorizon)
	return nil
}

// DataPoints reports how many sales rows exist for the company.
func (e *Engine) DataPoints(companyID int) int {
	return len(e.gen.Sales(companyID))
}

// SampleRows returns the first n sales rows for a company, for the
// debug surface.
func (e *Engine) SampleRows(companyID, n int) []models.SalesRecord {
	sales := e.gen.Sales(companyID)
	if len(sales) > n {
		sales = sales[:n]
	}
	return sales
}

type aggKey struct {
	item  string
	doy   int
	month int
	week  int
}

type aggCell struct {
	sum float64
	n   int
}

// fit aggregates history to mean quantity per (item, day-of-year,
// month, ISO week), trains one forest per item on an 80/20 split and
// scores out the horizon day by day. Items with fewer than five
// aggregated rows are skipped.
func (e *Engine) fit(sales []models.SalesRecord, daysAhead int) []models.ItemForecast {
	agg := make(map[aggKey]*aggCell)
	for _, r := range sales {
		_, week := r.Date.ISOWeek()
		k := aggKey{r.ItemName, r.Date.YearDay(), int(r.Date.Month()), week}
		cell := agg[k]
		if cell == nil {
			cell = &aggCell{}
			agg[k] = cell
		}
		cell.sum += float64(r.QuantitySold)
		cell.n++
	}

	byItem := make(map[string][]aggKey)
	for k := range agg {
		byItem[k.item] = append(byItem[k.item], k)
	}
	items := make([]string, 0, len(byItem))
	for item := range byItem {
		items = append(items, item)
	}
	sort.Strings(items)

	var preds []models.ItemForecast
	for _, item := range items {
		keys := byItem[item]
		if len(keys) < minItemRows {
			continue
		}
		sort.Slice(keys, func(a, b int) bool {
			if keys[a].doy != keys[b].doy {
				return keys[a].doy < keys[b].doy
			}
			if keys[a].month != keys[b].month {
				return keys[a].month < keys[b].month
			}
			return keys[a].week < keys[b].week
		})

		features := make([][]float64, len(keys))
		targets := make([]float64, len(keys))
		for i, k := range keys {
			features[i] = []float64{float64(k.doy), float64(k.month), float64(k.week)}
			cell := agg[k]
			targets[i] = cell.sum / float64(cell.n)
		}

		params := forest.DefaultParams()
		trainIdx, testIdx := forest.Split(len(keys), testFraction, params.Seed)
		trainX := make([][]float64, 0, len(trainIdx))
		trainY := make([]float64, 0, len(trainIdx))
		for _, i := range trainIdx {
			trainX = append(trainX, features[i])
			trainY = append(trainY, targets[i])
		}
		model := forest.Fit(trainX, trainY, params)

		daily := e.scoreHorizon(model, daysAhead)
		preds = append(preds, models.ItemForecast{
			ItemName:       item,
			Demand30:       int(prefixSum(daily, 30)),
			Demand60:       int(prefixSum(daily, 60)),
			Demand90:       int(prefixSum(daily, len(daily))),
			AvgDailyDemand: prefixSum(daily, len(daily)) / float64(len(daily)),
			Confidence:     confidence(model, features, targets, testIdx),
			Reason:         "Based on historical sales patterns and machine learning",
		})
	}
	return preds
}

// scoreHorizon predicts each day from tomorrow out to the horizon.
func (e *Engine) scoreHorizon(model *forest.Forest, daysAhead int) []float64 {
	start := e.now().AddDate(0, 0, 1)
	daily := make([]float64, 0, daysAhead)
	for d := 0; d < daysAhead; d++ {
		day := start.AddDate(0, 0, d)
		_, week := day.ISOWeek()
		x := []float64{float64(day.YearDay()), float64(int(day.Month())), float64(week)}
		daily = append(daily, model.Predict(x))
	}
	return daily
}

// confidence scores the fit on the held-out rows as 1 - MAE/mean,
// floored at 0.3. An all-zero holdout keeps the floor.
func confidence(model *forest.Forest, features [][]float64, targets []float64, testIdx []int) float64 {
	if len(testIdx) == 0 {
		return 0.3
	}
	var absErr, mean float64
	for _, i := range testIdx {
		absErr += math.Abs(model.Predict(features[i]) - targets[i])
		mean += targets[i]
	}
	absErr /= float64(len(testIdx))
	mean /= float64(len(testIdx))
	if mean <= 0 {
		return 0.3
	}
	return math.Max(0.3, 1-absErr/mean)
}

func prefixSum(vals []float64, n int) float64 {
	if n > len(vals) {
		n = len(vals)
	}
	var s float64
	for _, v := range vals[:n] {
		s += v
	}
	return s
}
