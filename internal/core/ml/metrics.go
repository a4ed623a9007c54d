package ml

import "math/rand"

// EvalMetrics are the binary classification metrics reported after training.
type EvalMetrics struct {
	Accuracy  float64 `json:"accuracy"`
	Precision float64 `json:"precision"`
	Recall    float64 `json:"recall"`
	F1        float64 `json:"f1"`
}

// Evaluate computes metrics for probabilities against labels at a threshold.
func Evaluate(probs []float64, y []int, threshold float64) EvalMetrics {
	var tp, fp, tn, fn int
	for i, p := range probs {
		pred := 0
		if p >= threshold {
			pred = 1
		}
		switch {
		case pred == 1 && y[i] == 1:
			tp++
		case pred == 1 && y[i] == 0:
			fp++
		case pred == 0 && y[i] == 0:
			tn++
		default:
			fn++
		}
	}

	var m EvalMetrics
	total := tp + fp + tn + fn
	if total > 0 {
		m.Accuracy = float64(tp+tn) / float64(total)
	}
	if tp+fp > 0 {
		m.Precision = float64(tp) / float64(tp+fp)
	}
	if tp+fn > 0 {
		m.Recall = float64(tp) / float64(tp+fn)
	}
	if m.Precision+m.Recall > 0 {
		m.F1 = 2 * m.Precision * m.Recall / (m.Precision + m.Recall)
	}
	return m
}

// BestThreshold scans [0.05, 0.95] in steps of 0.01 and returns the
// threshold maximizing F1 on the validation set.
func BestThreshold(probs []float64, y []int) (float64, EvalMetrics) {
	best := 0.5
	bestMetrics := Evaluate(probs, y, best)
	for t := 0.05; t <= 0.9501; t += 0.01 {
		m := Evaluate(probs, y, t)
		if m.F1 > bestMetrics.F1 {
			best = t
			bestMetrics = m
		}
	}
	return best, bestMetrics
}

// StratifiedSplit partitions row indices into train/test keeping the label
// ratio in both parts. Deterministic for a given seed.
func StratifiedSplit(y []int, testFraction float64, seed int64) (trainIdx, testIdx []int) {
	rng := rand.New(rand.NewSource(seed))

	byClass := map[int][]int{}
	for i, label := range y {
		byClass[label] = append(byClass[label], i)
	}

	for _, label := range []int{0, 1} {
		indices := byClass[label]
		rng.Shuffle(len(indices), func(i, j int) {
			indices[i], indices[j] = indices[j], indices[i]
		})
		nTest := int(float64(len(indices)) * testFraction)
		// keep at least one row per class on each side when possible
		if nTest == 0 && len(indices) > 1 {
			nTest = 1
		}
		testIdx = append(testIdx, indices[:nTest]...)
		trainIdx = append(trainIdx, indices[nTest:]...)
	}
	return trainIdx, testIdx
}
