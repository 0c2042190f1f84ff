// Package forest implements a small bagged regression forest for the
// demand and payment models. Trees grow greedily on variance
// reduction over bootstrap resamples of the training rows.
package forest

import (
	"math"
	"math/rand"
	"sort"
)

// Params controls ensemble size and tree growth.
type Params struct {
	Trees    int
	MaxDepth int
	MinSplit int
	Seed     int64
}

// DefaultParams matches the sizing the service trains with.
func DefaultParams() Params {
	return Params{Trees: 100, MaxDepth: 24, MinSplit: 2, Seed: 42}
}

// Forest is a trained ensemble. The zero value is not usable; build
// one with Fit.
type Forest struct {
	trees []*node
}

type node struct {
	feature   int
	threshold float64
	left      *node
	right     *node
	value     float64
}

func (n *node) leaf() bool {
	return n.left == nil
}

// Fit trains p.Trees regression trees, each on a bootstrap resample
// of the rows. Deterministic for a given seed.
func Fit(features [][]float64, targets []float64, p Params) *Forest {
	rng := rand.New(rand.NewSource(p.Seed))
	n := len(targets)
	f := &Forest{trees: make([]*node, 0, p.Trees)}
	for t := 0; t < p.Trees; t++ {
		sample := make([]int, n)
		for i := range sample {
			sample[i] = rng.Intn(n)
		}
		f.trees = append(f.trees, grow(features, targets, sample, 0, p))
	}
	return f
}

// Predict returns the ensemble mean for one feature row.
func (f *Forest) Predict(x []float64) float64 {
	var sum float64
	for _, t := range f.trees {
		n := t
		for !n.leaf() {
			if x[n.feature] <= n.threshold {
				n = n.left
			} else {
				n = n.right
			}
		}
		sum += n.value
	}
	return sum / float64(len(f.trees))
}

// PredictClass thresholds the ensemble mean at 0.5, treating 0/1
// targets as a vote share.
func (f *Forest) PredictClass(x []float64) int {
	if f.Predict(x) >= 0.5 {
		return 1
	}
	return 0
}

// Split shuffles row indices with the given seed and carves off
// testFrac of them as the held-out set.
func Split(n int, testFrac float64, seed int64) (train, test []int) {
	rng := rand.New(rand.NewSource(seed))
	perm := rng.Perm(n)
	nTest := int(math.Ceil(float64(n) * testFrac))
	if nTest > n {
		nTest = n
	}
	return perm[nTest:], perm[:nTest]
}

func grow(xs [][]float64, ys []float64, idx []int, depth int, p Params) *node {
	mean := meanOf(ys, idx)
	if len(idx) < p.MinSplit || depth >= p.MaxDepth || pure(ys, idx) {
		return &node{value: mean}
	}

	feature, threshold, ok := bestSplit(xs, ys, idx)
	if !ok {
		return &node{value: mean}
	}

	var left, right []int
	for _, i := range idx {
		if xs[i][feature] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &node{value: mean}
	}
	return &node{
		feature:   feature,
		threshold: threshold,
		left:      grow(xs, ys, left, depth+1, p),
		right:     grow(xs, ys, right, depth+1, p),
	}
}

// bestSplit scans every feature with a sorted sweep and running
// prefix sums, scoring candidate cuts by the summed squared error of
// the two sides.
func bestSplit(xs [][]float64, ys []float64, idx []int) (feature int, threshold float64, ok bool) {
	n := len(idx)
	best := math.Inf(1)
	order := make([]int, n)

	for f := 0; f < len(xs[idx[0]]); f++ {
		copy(order, idx)
		sort.Slice(order, func(a, b int) bool {
			return xs[order[a]][f] < xs[order[b]][f]
		})

		var sumL, sqL float64
		var sumT, sqT float64
		for _, i := range order {
			sumT += ys[i]
			sqT += ys[i] * ys[i]
		}

		for cut := 1; cut < n; cut++ {
			y := ys[order[cut-1]]
			sumL += y
			sqL += y * y
			lo, hi := xs[order[cut-1]][f], xs[order[cut]][f]
			if lo == hi {
				continue
			}
			nl := float64(cut)
			nr := float64(n - cut)
			sumR := sumT - sumL
			sqR := sqT - sqL
			score := (sqL - sumL*sumL/nl) + (sqR - sumR*sumR/nr)
			if score < best {
				best = score
				feature = f
				threshold = (lo + hi) / 2
				ok = true
			}
		}
	}
	return feature, threshold, ok
}

func meanOf(ys []float64, idx []int) float64 {
	var sum float64
	for _, i := range idx {
		sum += ys[i]
	}
	return sum / float64(len(idx))
}

func pure(ys []float64, idx []int) bool {
	first := ys[idx[0]]
	for _, i := range idx[1:] {
		if ys[i] != first {
			return false
		}
	}
	return true
}
