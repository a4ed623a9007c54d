package ml

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogisticRegression_LearnsSeparableData(t *testing.T) {
	X := [][]float64{
		{-2}, {-1.5}, {-1}, {-0.5},
		{0.5}, {1}, {1.5}, {2},
	}
	y := []int{0, 0, 0, 0, 1, 1, 1, 1}

	m := &LogisticRegression{}
	m.Fit(X, y, DefaultTrainConfig())

	for i, x := range X {
		p := m.PredictProba(x)
		if y[i] == 1 {
			assert.Greater(t, p, 0.5, "row %d", i)
		} else {
			assert.Less(t, p, 0.5, "row %d", i)
		}
	}
}

func TestLogisticRegression_ProbabilitiesBounded(t *testing.T) {
	m := &LogisticRegression{Weights: []float64{100}, Bias: 0}

	assert.Equal(t, 1.0, m.PredictProba([]float64{10}))
	assert.Equal(t, 0.0, m.PredictProba([]float64{-10}))

	for _, x := range []float64{-3, -1, 0, 1, 3} {
		p := m.PredictProba([]float64{x})
		assert.GreaterOrEqual(t, p, 0.0)
		assert.LessOrEqual(t, p, 1.0)
	}
}

func TestLogisticRegression_BalancedWeights(t *testing.T) {
	// heavily imbalanced set: unweighted GD would drift toward all-negative
	X := [][]float64{
		{-1}, {-1.1}, {-0.9}, {-1.2}, {-0.8}, {-1.05}, {-0.95}, {-1.15}, {-0.85},
		{1},
	}
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, 0, 1}

	m := &LogisticRegression{}
	m.Fit(X, y, DefaultTrainConfig())

	assert.Greater(t, m.PredictProba([]float64{1}), 0.5)
}

func TestEvaluate(t *testing.T) {
	probs := []float64{0.9, 0.8, 0.3, 0.2}
	y := []int{1, 0, 1, 0}

	m := Evaluate(probs, y, 0.5)
	// tp=1 fp=1 fn=1 tn=1
	assert.InDelta(t, 0.5, m.Accuracy, 1e-9)
	assert.InDelta(t, 0.5, m.Precision, 1e-9)
	assert.InDelta(t, 0.5, m.Recall, 1e-9)
	assert.InDelta(t, 0.5, m.F1, 1e-9)
}

func TestEvaluate_ThresholdIsInclusive(t *testing.T) {
	m := Evaluate([]float64{0.5}, []int{1}, 0.5)
	assert.Equal(t, 1.0, m.Recall)
}

func TestBestThreshold(t *testing.T) {
	// perfect separation at 0.5; any threshold in (0.4, 0.6] gets F1=1
	probs := []float64{0.1, 0.2, 0.3, 0.4, 0.6, 0.7, 0.8, 0.9}
	y := []int{0, 0, 0, 0, 1, 1, 1, 1}

	threshold, metrics := BestThreshold(probs, y)
	assert.Equal(t, 1.0, metrics.F1)
	assert.Greater(t, threshold, 0.4)
	assert.LessOrEqual(t, threshold, 0.6)
}

func TestStratifiedSplit(t *testing.T) {
	y := make([]int, 100)
	for i := 60; i < 100; i++ {
		y[i] = 1
	}

	trainIdx, testIdx := StratifiedSplit(y, 0.2, 42)
	assert.Len(t, trainIdx, 80)
	assert.Len(t, testIdx, 20)

	countOnes := func(indices []int) int {
		n := 0
		for _, i := range indices {
			if y[i] == 1 {
				n++
			}
		}
		return n
	}
	assert.Equal(t, 32, countOnes(trainIdx))
	assert.Equal(t, 8, countOnes(testIdx))

	// no overlap
	seen := map[int]bool{}
	for _, i := range append(append([]int(nil), trainIdx...), testIdx...) {
		assert.False(t, seen[i], "index %d appears twice", i)
		seen[i] = true
	}
	assert.Len(t, seen, 100)
}

func TestStratifiedSplit_Deterministic(t *testing.T) {
	y := []int{0, 1, 0, 1, 0, 1, 0, 1, 0, 1}

	train1, test1 := StratifiedSplit(y, 0.2, 42)
	train2, test2 := StratifiedSplit(y, 0.2, 42)
	assert.Equal(t, train1, train2)
	assert.Equal(t, test1, test2)
}

func TestStratifiedSplit_MinorityClassKept(t *testing.T) {
	// tiny class still lands one row in the test split
	y := []int{0, 0, 0, 0, 0, 0, 0, 0, 1, 1}

	_, testIdx := StratifiedSplit(y, 0.2, 42)
	hasMinority := false
	for _, i := range testIdx {
		if y[i] == 1 {
			hasMinority = true
		}
	}
	assert.True(t, hasMinority)
}
