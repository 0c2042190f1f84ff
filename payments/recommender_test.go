package payments

import (
	"fmt"
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
	return New(gen, nil)
}

func history(n, days, completed int) []models.PaymentRecord {
	records := make([]models.PaymentRecord, 0, n)
	for i := 0; i < n; i++ {
		status := "completed"
		if i >= completed {
			status = "delayed"
		}
		records = append(records, models.PaymentRecord{
			CustomerID:    1,
			CustomerName:  "Customer 1",
			Amount:        10,
			PaymentDays:   days,
			PaymentStatus: status,
		})
	}
	return records
}

func TestRecommendShape(t *testing.T) {
	e := newEngine()
	recs := e.Recommend(1)

	require.Len(t, recs, 20)
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.CustomerID)
		assert.Equal(t, fmt.Sprintf("Customer %d", i+1), rec.CustomerName)
		assert.Contains(t, []string{"low", "medium", "high"}, rec.RiskLevel)
		assert.Equal(t, rec.RiskLevel, rec.Priority)
		assert.Equal(t, strategyFor(rec.RiskLevel), rec.PaymentStrategy)
		if rec.PaymentHistoryScore < 0 || rec.PaymentHistoryScore > 1 {
			t.Fatalf("customer %d history score %f out of range", rec.CustomerID, rec.PaymentHistoryScore)
		}
		if rec.AvgPaymentDays < 7 || rec.AvgPaymentDays > 60 {
			t.Fatalf("customer %d avg days %f out of range", rec.CustomerID, rec.AvgPaymentDays)
		}
		assert.Empty(t, rec.Note)
	}
}

func TestRecommendDeterministic(t *testing.T) {
	e := newEngine()
	assert.Equal(t, e.Recommend(1), e.Recommend(1))
}

func TestRiskBanding(t *testing.T) {
	e := newEngine()

	cases := []struct {
		name      string
		records   []models.PaymentRecord
		level     string
		score     int
		frequency string
	}{
		{"prompt and reliable", history(10, 15, 10), "low", 1, "monthly"},
		{"slow but reliable", history(10, 30, 10), "medium", 2, "bi-weekly"},
		{"just past prompt", history(10, 16, 10), "medium", 2, "bi-weekly"},
		{"prompt but patchy", history(10, 15, 8), "medium", 2, "bi-weekly"},
		{"too slow", history(10, 31, 10), "high", 3, "weekly"},
		{"unreliable", history(10, 15, 5), "high", 3, "weekly"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			rec := e.customerRecommendation(tc.records)
			assert.Equal(t, tc.level, rec.RiskLevel)
			assert.Equal(t, tc.score, rec.RiskScore)
			assert.Equal(t, tc.frequency, rec.RecommendedFrequency)
		})
	}
}

func TestRecommendedPaymentFloors(t *testing.T) {
	e := newEngine()

	// A tiny balance hits the per-band minimums.
	low := e.customerRecommendation(history(10, 15, 10))
	assert.Equal(t, 5000.0, low.RecommendedPayment)

	medium := e.customerRecommendation(history(10, 30, 10))
	assert.Equal(t, 3000.0, medium.RecommendedPayment)

	high := e.customerRecommendation(history(10, 60, 10))
	assert.Equal(t, 2000.0, high.RecommendedPayment)

	// A large balance scales with the band fraction instead.
	big := history(10, 15, 10)
	for i := range big {
		big[i].Amount = 10000
	}
	scaled := e.customerRecommendation(big)
	assert.Equal(t, 80000.0, scaled.RecommendedPayment)
}

func TestStrategyBlocks(t *testing.T) {
	low := strategyFor("low")
	assert.Equal(t, "friendly_reminder", low.Approach)
	assert.Equal(t, []int{30, 45, 60}, low.FollowUpIntervals)
	assert.Equal(t, 90, low.EscalationThreshold)

	medium := strategyFor("medium")
	assert.Equal(t, "structured_follow_up", medium.Approach)
	assert.Equal(t, []string{"formal_letter", "phone_call", "site_visit"}, medium.CollectionMethods)
	assert.Equal(t, 60, medium.EscalationThreshold)

	high := strategyFor("high")
	assert.Equal(t, "aggressive_collection", high.Approach)
	assert.Equal(t, []int{3, 7, 14}, high.FollowUpIntervals)
	assert.Equal(t, 30, high.EscalationThreshold)
}

func TestFallbackRecommendations(t *testing.T) {
	e := newEngine()
	recs := e.fallbackRecommendations(1)

	require.Len(t, recs, 5)
	wantNames := []string{
		"Retail Store A", "Wholesale Buyer B", "Corporate Client C",
		"Local Business D", "Export Customer E",
	}
	wantIntervals := [][]int{
		{7, 15}, {30, 45}, {30, 45}, {7, 15}, {30, 45},
	}
	for i, rec := range recs {
		assert.Equal(t, i+1, rec.CustomerID)
		assert.Equal(t, wantNames[i], rec.CustomerName)
		assert.Equal(t, "medium", rec.RiskLevel)
		assert.Equal(t, 0.75, rec.PaymentHistoryScore)
		assert.Equal(t, "standard_follow_up", rec.PaymentStrategy.Approach)
		assert.Equal(t, wantIntervals[i], rec.PaymentStrategy.FollowUpIntervals)
		assert.Equal(t, 45, rec.PaymentStrategy.EscalationThreshold)
		assert.Equal(t, "Initial recommendation based on industry standards", rec.Note)
		if rec.CurrentCreditBalance < 5000 || rec.CurrentCreditBalance >= 50000 {
			t.Fatalf("balance %f out of range", rec.CurrentCreditBalance)
		}
		if rec.RecommendedPayment < 2000 || rec.RecommendedPayment >= 15000 {
			t.Fatalf("payment %f out of range", rec.RecommendedPayment)
		}
	}
	assert.Equal(t, recs, e.fallbackRecommendations(1))
}

func TestTrain(t *testing.T) {
	e := newEngine()
	acc, err := e.Train(1)

	require.NoError(t, err)
	if acc < 0.5 || acc > 1 {
		t.Fatalf("accuracy %f out of range", acc)
	}
}
