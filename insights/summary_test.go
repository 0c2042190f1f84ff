package insights

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryPerfectScore(t *testing.T) {
	sales := flat(100000, 12)
	sales[11] = 125000
	s := buildSummary(build(sales, 30, 34000, 20000, 0.85, 8, flatInt(30, 12)), fixedClock())

	// Sales grew 25% first to last, so every band scores full marks.
	assert.Equal(t, 100, s.HealthScore)
	assert.Equal(t, "excellent", s.OverallHealth)
	assert.Empty(t, s.KeyRecommendations)
	assert.Equal(t, "Your business health score is 100/100 (excellent). Focus on  for improvement.", s.Summary)
	assert.Equal(t, 12, s.KeyMetrics.DataPointsAnalyzed)
	assert.Equal(t, fixedClock(), s.AssessmentDate)
}

func TestSummaryPoorScore(t *testing.T) {
	s := buildSummary(build(flat(100000, 12), 10, 80000, 20000, 0.5, 8, flatInt(30, 12)), fixedClock())

	// Every band bottoms out at 10 points.
	assert.Equal(t, 40, s.HealthScore)
	assert.Equal(t, "poor", s.OverallHealth)
	require.Len(t, s.KeyRecommendations, 3)
	assert.Equal(t,
		"Your business health score is 40/100 (poor). Focus on Focus on improving profit margins, Implement cost control measures, Enhance customer retention strategies for improvement.",
		s.Summary)
}

func TestSummaryBandEdges(t *testing.T) {
	cases := []struct {
		name   string
		margin float64
		want   int
	}{
		{"full marks at 25", 25, 25},
		{"strong at 20", 20, 20},
		{"fair at 15", 15, 15},
		{"floor below 15", 14, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// Other bands held at full marks: ratio 34, retention
			// 0.85, growth 25%.
			sales := flat(100000, 12)
			sales[11] = 125000
			s := buildSummary(build(sales, tc.margin, 34000, 20000, 0.85, 8, flatInt(30, 12)), fixedClock())
			assert.Equal(t, 75+tc.want, s.HealthScore)
		})
	}
}

func TestSummaryGrowthNeedsHistory(t *testing.T) {
	// Three months max out everything except growth, which never
	// scores, capping health at 75.
	s := buildSummary(build(flat(100000, 3), 30, 34000, 20000, 0.85, 8, flatInt(30, 3)), fixedClock())

	assert.Equal(t, 75, s.HealthScore)
	assert.Equal(t, "good", s.OverallHealth)
	assert.Equal(t, 3, s.KeyMetrics.DataPointsAnalyzed)
}

func TestSummaryStatusBands(t *testing.T) {
	// Margin 20 (+20), ratio 55 (+20), retention 0.75 (+20), growth
	// 12% (+20) lands on 80, the excellent boundary.
	sales := flat(100000, 12)
	sales[11] = 112000
	s := buildSummary(build(sales, 20, 55000, 20000, 0.75, 8, flatInt(30, 12)), fixedClock())
	assert.Equal(t, 80, s.HealthScore)
	assert.Equal(t, "excellent", s.OverallHealth)

	// Dropping retention to the floor gives 70, a good score.
	s = buildSummary(build(sales, 20, 55000, 20000, 0.5, 8, flatInt(30, 12)), fixedClock())
	assert.Equal(t, 70, s.HealthScore)
	assert.Equal(t, "good", s.OverallHealth)
}

func TestSummaryOverGeneratedData(t *testing.T) {
	e := newEngine()
	s := e.Summary(1)

	assert.Equal(t, s, e.Summary(1))
	if s.HealthScore < 40 || s.HealthScore > 100 {
		t.Fatalf("score %d outside plausible range", s.HealthScore)
	}
	assert.Equal(t, 12, s.KeyMetrics.DataPointsAnalyzed)
	assert.Empty(t, s.Note)
}

func TestFallbackSummary(t *testing.T) {
	e := newEngine()
	s := e.fallbackSummary()

	assert.Equal(t, "starting", s.OverallHealth)
	assert.Equal(t, 50, s.HealthScore)
	assert.Equal(t, 50000.0, s.KeyMetrics.AverageMonthlySales)
	assert.Equal(t, 0.65, s.KeyMetrics.CustomerRetentionRate)
	assert.Equal(t, 0, s.KeyMetrics.DataPointsAnalyzed)
	require.Len(t, s.KeyRecommendations, 3)
	assert.Equal(t, "Initial assessment based on general business practices", s.Note)
}
