package payments

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssessRisk(t *testing.T) {
	e := newEngine()
	a := e.AssessRisk(1)

	assert.Equal(t, 20, a.TotalCustomers)
	assert.Equal(t, a.TotalCustomers-a.HighRiskCount-a.MediumRiskCount, a.LowRiskCount)
	assert.InDelta(t, float64(a.HighRiskCount)/20*100, a.RiskPercentage, 1e-9)

	switch {
	case a.RiskPercentage <= 20:
		assert.Equal(t, "low", a.OverallRiskLevel)
	case a.RiskPercentage <= 40:
		assert.Equal(t, "medium", a.OverallRiskLevel)
	default:
		assert.Equal(t, "high", a.OverallRiskLevel)
	}

	if a.OnTimePaymentRate < 0 || a.OnTimePaymentRate > 1 {
		t.Fatalf("on-time rate %f out of range", a.OnTimePaymentRate)
	}
	if a.AveragePaymentDays < 7 || a.AveragePaymentDays > 60 {
		t.Fatalf("average days %f out of range", a.AveragePaymentDays)
	}
	assert.Equal(t, riskRecommendations(a.OverallRiskLevel), a.Recommendations)
	assert.Empty(t, a.Note)
}

func TestAssessRiskDeterministic(t *testing.T) {
	e := newEngine()
	assert.Equal(t, e.AssessRisk(3), e.AssessRisk(3))
}

func TestRiskRecommendationBands(t *testing.T) {
	require.Len(t, riskRecommendations("low"), 3)
	require.Len(t, riskRecommendations("medium"), 4)
	require.Len(t, riskRecommendations("high"), 5)

	assert.Equal(t, "Maintain current credit policies", riskRecommendations("low")[0])
	assert.Equal(t, "Review credit limits for high-risk customers", riskRecommendations("medium")[0])
	assert.Equal(t, "Immediately review all outstanding accounts", riskRecommendations("high")[0])
}

func TestFallbackAssessment(t *testing.T) {
	e := newEngine()
	a := e.fallbackAssessment()

	assert.Equal(t, "medium", a.OverallRiskLevel)
	assert.Equal(t, 5, a.TotalCustomers)
	assert.Equal(t, 1, a.HighRiskCount)
	assert.Equal(t, 2, a.MediumRiskCount)
	assert.Equal(t, 2, a.LowRiskCount)
	assert.Equal(t, 20.0, a.RiskPercentage)
	assert.Equal(t, 125000.0, a.TotalOutstandingAmount)
	assert.Equal(t, 28.5, a.AveragePaymentDays)
	assert.Equal(t, 0.75, a.OnTimePaymentRate)
	require.Len(t, a.Recommendations, 3)
	assert.Equal(t, "Initial assessment based on industry standards", a.Note)
}
