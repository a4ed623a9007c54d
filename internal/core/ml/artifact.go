package ml

import (
	"fmt"
	"time"

	"churn-prediction-service/internal/core/domain"
)

// ModelArtifact bundles the fitted pipeline, classifier, decision threshold
// and validation metrics. Created by training, read-only afterwards,
// replaced wholesale on retraining.
type ModelArtifact struct {
	TrainedAt  time.Time           `json:"trained_at"`
	Pipeline   *FeaturePipeline    `json:"pipeline"`
	Model      *LogisticRegression `json:"model"`
	Threshold  float64             `json:"best_threshold"`
	Validation EvalMetrics         `json:"validation"`
}

// Score preprocesses a raw frame and returns one churn probability per row.
func (a *ModelArtifact) Score(f *domain.Frame) ([]float64, error) {
	processed := Preprocess(f).DropColumns(DropColumns...)
	X, err := a.Pipeline.Transform(processed)
	if err != nil {
		return nil, err
	}
	return a.Model.PredictBatch(X), nil
}

// Validate checks structural integrity after loading from disk.
func (a *ModelArtifact) Validate() error {
	if a.Pipeline == nil || a.Model == nil {
		return fmt.Errorf("model artifact is incomplete")
	}
	if len(a.Model.Weights) != len(a.Pipeline.FeatureNames) {
		return fmt.Errorf("model has %d weights but pipeline emits %d features",
			len(a.Model.Weights), len(a.Pipeline.FeatureNames))
	}
	if a.Threshold <= 0 || a.Threshold >= 1 {
		return fmt.Errorf("threshold %v outside (0, 1)", a.Threshold)
	}
	return nil
}
