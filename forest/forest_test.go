package forest

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stepData(n int) ([][]float64, []float64) {
	rng := rand.New(rand.NewSource(99))
	xs := make([][]float64, n)
	ys := make([]float64, n)
	for i := range xs {
		x := rng.Float64() * 10
		xs[i] = []float64{x, rng.Float64()}
		if x < 5 {
			ys[i] = 1
		} else {
			ys[i] = 9
		}
	}
	return xs, ys
}

func TestFitRecoversStepFunction(t *testing.T) {
	xs, ys := stepData(200)
	f := Fit(xs, ys, DefaultParams())

	low := f.Predict([]float64{2, 0.5})
	high := f.Predict([]float64{8, 0.5})
	assert.InDelta(t, 1, low, 0.5)
	assert.InDelta(t, 9, high, 0.5)
}

func TestFitDeterministic(t *testing.T) {
	xs, ys := stepData(100)
	a := Fit(xs, ys, DefaultParams())
	b := Fit(xs, ys, DefaultParams())

	probe := []float64{3.3, 0.1}
	assert.Equal(t, a.Predict(probe), b.Predict(probe))
}

func TestConstantTargets(t *testing.T) {
	xs := [][]float64{{1, 0}, {2, 0}, {3, 0}, {4, 0}}
	ys := []float64{7, 7, 7, 7}
	f := Fit(xs, ys, DefaultParams())

	assert.Equal(t, 7.0, f.Predict([]float64{2.5, 0}))
}

func TestPredictClass(t *testing.T) {
	xs, raw := stepData(200)
	ys := make([]float64, len(raw))
	for i, y := range raw {
		if y > 5 {
			ys[i] = 1
		}
	}
	f := Fit(xs, ys, DefaultParams())

	assert.Equal(t, 0, f.PredictClass([]float64{1, 0.5}))
	assert.Equal(t, 1, f.PredictClass([]float64{9, 0.5}))
}

func TestSplit(t *testing.T) {
	train, test := Split(10, 0.2, 42)
	require.Len(t, test, 2)
	require.Len(t, train, 8)

	seen := map[int]bool{}
	for _, i := range append(append([]int{}, train...), test...) {
		if seen[i] {
			t.Fatalf("index %d appears twice", i)
		}
		seen[i] = true
	}
	require.Len(t, seen, 10)

	trainAgain, testAgain := Split(10, 0.2, 42)
	assert.Equal(t, train, trainAgain)
	assert.Equal(t, test, testAgain)

	all := append(append([]int{}, train...), test...)
	sort.Ints(all)
	assert.Equal(t, []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}, all)
}

func TestSplitCeilsTestSize(t *testing.T) {
	train, test := Split(5, 0.2, 42)
	assert.Len(t, test, 1)
	assert.Len(t, train, 4)
}
