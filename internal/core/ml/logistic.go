package ml

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// LogisticRegression is a binary classifier over the pipeline's feature
// vectors. Weights align with FeaturePipeline.FeatureNames.
type LogisticRegression struct {
	Weights []float64 `json:"weights"`
	Bias    float64   `json:"bias"`
}

// TrainConfig controls full-batch gradient descent.
type TrainConfig struct {
	LearningRate float64
	Epochs       int
	L2           float64
	// Balanced reweights classes inversely to their frequency, matching
	// class_weight="balanced".
	Balanced bool
}

func DefaultTrainConfig() TrainConfig {
	return TrainConfig{
		LearningRate: 0.1,
		Epochs:       500,
		L2:           1e-3,
		Balanced:     true,
	}
}

// Fit trains the model. y must contain 0/1 labels.
func (m *LogisticRegression) Fit(X [][]float64, y []int, cfg TrainConfig) {
	if len(X) == 0 {
		return
	}
	dim := len(X[0])
	m.Weights = make([]float64, dim)
	m.Bias = 0

	w0, w1 := 1.0, 1.0
	if cfg.Balanced {
		var pos int
		for _, label := range y {
			if label == 1 {
				pos++
			}
		}
		neg := len(y) - pos
		if pos > 0 && neg > 0 {
			n := float64(len(y))
			w1 = n / (2 * float64(pos))
			w0 = n / (2 * float64(neg))
		}
	}

	grad := make([]float64, dim)
	n := float64(len(X))
	for epoch := 0; epoch < cfg.Epochs; epoch++ {
		for i := range grad {
			grad[i] = 0
		}
		gradBias := 0.0

		for i, x := range X {
			p := m.PredictProba(x)
			sampleWeight := w0
			if y[i] == 1 {
				sampleWeight = w1
			}
			residual := sampleWeight * (p - float64(y[i]))
			floats.AddScaled(grad, residual, x)
			gradBias += residual
		}

		// L2 penalty on weights only
		floats.AddScaled(grad, cfg.L2*n, m.Weights)

		floats.AddScaled(m.Weights, -cfg.LearningRate/n, grad)
		m.Bias -= cfg.LearningRate / n * gradBias
	}
}

// PredictProba returns the churn probability for one feature vector.
func (m *LogisticRegression) PredictProba(x []float64) float64 {
	z := m.Bias + floats.Dot(m.Weights, x)
	return sigmoid(z)
}

// PredictBatch returns churn probabilities for every row.
func (m *LogisticRegression) PredictBatch(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i, x := range X {
		out[i] = m.PredictProba(x)
	}
	return out
}

func sigmoid(z float64) float64 {
	// clamp to keep exp in range
	if z > 35 {
		return 1
	}
	if z < -35 {
		return 0
	}
	return 1 / (1 + math.Exp(-z))
}
