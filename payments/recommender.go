// Package payments turns customer payment history into collection
// plans and a company-wide risk picture.
package payments

import (
	"errors"
	"log"
	"math"
	"math/rand"
	"time"

	"ai-service/forest"
	"ai-service/models"
	"ai-service/sampledata"
)

const minTrainRecords = 20

// ErrInsufficientData is returned by Train when a company has too few
// payment records to fit the classifier.
var ErrInsufficientData = errors.New("insufficient payment history to train")

// ErrNoVariation is returned by Train when every record shares one
// payment status, leaving nothing to classify.
var ErrNoVariation = errors.New("payment history has no status variation")

// Engine scores customer payment behavior. Stateless per call, like
// the demand engine.
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

// Recommend produces one collection plan per customer, in customer id
// order. Any failure degrades to the industry-pattern set.
func (e *Engine) Recommend(companyID int) (recs []models.CustomerRecommendation) {
	defer func() {
		if r := recover(); r != nil {
			log.Printf("[payments] recommendation failed for company %d: %v", companyID, r)
			recs = e.fallbackRecommendations(companyID)
		}
	}()

	records := e.gen.Payments(companyID)
	if len(records) == 0 {
		return e.fallbackRecommendations(companyID)
	}

	var order []int
	byCustomer := make(map[int][]models.PaymentRecord)
	for _, r := range records {
		if _, seen := byCustomer[r.CustomerID]; !seen {
			order = append(order, r.CustomerID)
		}
		byCustomer[r.CustomerID] = append(byCustomer[r.CustomerID], r)
	}

	recs = make([]models.CustomerRecommendation, 0, len(order))
	for _, id := range order {
		recs = append(recs, e.customerRecommendation(byCustomer[id]))
	}
	return recs
}

// customerRecommendation bands one customer by average payment days
// and on-time rate, then sizes the ask to the band.
func (e *Engine) customerRecommendation(records []models.PaymentRecord) models.CustomerRecommendation {
	var daySum, total float64
	var onTime int
	for _, r := range records {
		daySum += float64(r.PaymentDays)
		total += r.Amount
		if r.PaymentStatus == "completed" {
			onTime++
		}
	}
	avgDays := daySum / float64(len(records))
	onTimeRate := float64(onTime) / float64(len(records))

	var level string
	var score int
	switch {
	case avgDays <= 15 && onTimeRate >= 0.9:
		level, score = "low", 1
	case avgDays <= 30 && onTimeRate >= 0.7:
		level, score = "medium", 2
	default:
		level, score = "high", 3
	}

	var frequency string
	var amount float64
	switch level {
	case "low":
		frequency, amount = "monthly", math.Max(total*0.8, 5000)
	case "medium":
		frequency, amount = "bi-weekly", math.Max(total*0.6, 3000)
	default:
		frequency, amount = "weekly", math.Max(total*0.4, 2000)
	}

	return models.CustomerRecommendation{
		CustomerID:           records[0].CustomerID,
		CustomerName:         records[0].CustomerName,
		CurrentCreditBalance: total,
		RecommendedPayment:   amount,
		RecommendedFrequency: frequency,
		RiskLevel:            level,
		RiskScore:            score,
		PaymentHistoryScore:  onTimeRate,
		AvgPaymentDays:       avgDays,
		PaymentStrategy:      strategyFor(level),
		Priority:             level,
		LastUpdated:          e.now().UTC(),
	}
}

// strategyFor maps a risk band to its collection playbook.
func strategyFor(level string) models.PaymentStrategy {
	switch level {
	case "low":
		return models.PaymentStrategy{
			Approach:            "friendly_reminder",
			CommunicationStyle:  "warm_and_professional",
			FollowUpIntervals:   []int{30, 45, 60},
			CollectionMethods:   []string{"email", "phone_call"},
			EscalationThreshold: 90,
		}
	case "medium":
		return models.PaymentStrategy{
			Approach:            "structured_follow_up",
			CommunicationStyle:  "formal_and_direct",
			FollowUpIntervals:   []int{7, 15, 30},
			CollectionMethods:   []string{"formal_letter", "phone_call", "site_visit"},
			EscalationThreshold: 60,
		}
	default:
		return models.PaymentStrategy{
			Approach:            "aggressive_collection",
			CommunicationStyle:  "firm_and_clear",
			FollowUpIntervals:   []int{3, 7, 14},
			CollectionMethods:   []string{"legal_notice", "site_visit", "third_party_collector"},
			EscalationThreshold: 30,
		}
	}
}

var fallbackCustomers = []struct {
	name string
	kind string
}{
	{"Retail Store A", "retail"},
	{"Wholesale Buyer B", "wholesale"},
	{"Corporate Client C", "corporate"},
	{"Local Business D", "retail"},
	{"Export Customer E", "wholesale"},
}

var typicalPaymentDays = map[string][]int{
	"retail":    {7, 15, 30},
	"wholesale": {30, 45, 60},
	"corporate": {30, 45, 60, 90},
}

// fallbackRecommendations builds conservative plans for five template
// customers. Seeded by company id so repeated calls agree.
func (e *Engine) fallbackRecommendations(companyID int) []models.CustomerRecommendation {
	rng := rand.New(rand.NewSource(int64(companyID)))
	now := e.now().UTC()

	recs := make([]models.CustomerRecommendation, 0, len(fallbackCustomers))
	for i, customer := range fallbackCustomers {
		pattern := typicalPaymentDays[customer.kind]
		recs = append(recs, models.CustomerRecommendation{
			CustomerID:           i + 1,
			CustomerName:         customer.name,
			CurrentCreditBalance: 5000 + rng.Float64()*45000,
			RecommendedPayment:   2000 + rng.Float64()*13000,
			RecommendedFrequency: "monthly",
			RiskLevel:            "medium",
			RiskScore:            2,
			PaymentHistoryScore:  0.75,
			AvgPaymentDays:       float64(pattern[rng.Intn(len(pattern))]),
			PaymentStrategy: models.PaymentStrategy{
				Approach:            "standard_follow_up",
				CommunicationStyle:  "professional",
				FollowUpIntervals:   pattern[:2],
				CollectionMethods:   []string{"email", "phone_call"},
				EscalationThreshold: 45,
			},
			Priority:    "medium",
			LastUpdated: now,
			Note:        "Initial recommendation based on industry standards",
		})
	}
	return recs
}

// RecordCount reports how many payment rows exist for the company.
func (e *Engine) RecordCount(companyID int) int {
	return len(e.gen.Payments(companyID))
}

// Train fits the delayed-payment classifier on (payment days, amount)
// features and returns its held-out accuracy.
func (e *Engine) Train(companyID int) (float64, error) {
	records := e.gen.Payments(companyID)
	if len(records) < minTrainRecords {
		return 0, ErrInsufficientData
	}

	features := make([][]float64, len(records))
	labels := make([]float64, len(records))
	var delayed int
	for i, r := range records {
		features[i] = []float64{float64(r.PaymentDays), r.Amount}
		if r.PaymentStatus == "delayed" {
			labels[i] = 1
			delayed++
		}
	}
	if delayed == 0 || delayed == len(records) {
		return 0, ErrNoVariation
	}

	params := forest.DefaultParams()
	trainIdx, testIdx := forest.Split(len(records), 0.2, params.Seed)
	trainX := make([][]float64, 0, len(trainIdx))
	trainY := make([]float64, 0, len(trainIdx))
	for _, i := range trainIdx {
		trainX = append(trainX, features[i])
		trainY = append(trainY, labels[i])
	}
	model := forest.Fit(trainX, trainY, params)

	var correct int
	for _, i := range testIdx {
		if model.PredictClass(features[i]) == int(labels[i]) {
			correct++
		}
	}
	return float64(correct) / float64(len(testIdx)), nil
}
