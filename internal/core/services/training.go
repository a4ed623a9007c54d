package services

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
	ports "churn-prediction-service/internal/core/ports/output"
)

const (
	splitSeed          = 42
	validationFraction = 0.2
)

// TrainingService fits the preprocessing pipeline and classifier, selects a
// decision threshold on a held-out split, and persists the artifact. A
// failure anywhere aborts the run without partial writes.
type TrainingService struct {
	artifacts ports.ArtifactStore
}

func NewTrainingService(artifacts ports.ArtifactStore) *TrainingService {
	return &TrainingService{artifacts: artifacts}
}

// Train runs the full pipeline against the prepared training table.
func (s *TrainingService) Train(ctx context.Context, trainPath string) (*ml.ModelArtifact, error) {
	file, err := os.Open(trainPath)
	if err != nil {
		return nil, fmt.Errorf("open training table: %w", err)
	}
	defer file.Close()

	frame, err := domain.ReadFrame(file)
	if err != nil {
		return nil, err
	}

	y, err := churnLabels(frame)
	if err != nil {
		return nil, err
	}

	features := ml.Preprocess(frame).DropColumns(ml.DropColumns...)

	trainIdx, valIdx := ml.StratifiedSplit(y, validationFraction, splitSeed)
	trainFrame := features.SelectRows(trainIdx)
	valFrame := features.SelectRows(valIdx)
	trainY := selectLabels(y, trainIdx)
	valY := selectLabels(y, valIdx)

	pipeline := &ml.FeaturePipeline{}
	if err := pipeline.Fit(trainFrame); err != nil {
		return nil, err
	}
	trainX, err := pipeline.Transform(trainFrame)
	if err != nil {
		return nil, err
	}
	valX, err := pipeline.Transform(valFrame)
	if err != nil {
		return nil, err
	}

	model := &ml.LogisticRegression{}
	model.Fit(trainX, trainY, ml.DefaultTrainConfig())

	valProbs := model.PredictBatch(valX)
	threshold, metrics := ml.BestThreshold(valProbs, valY)

	log.WithFields(log.Fields{
		"threshold": threshold,
		"accuracy":  metrics.Accuracy,
		"precision": metrics.Precision,
		"recall":    metrics.Recall,
		"f1":        metrics.F1,
	}).Info("validation metrics")

	artifact := &ml.ModelArtifact{
		TrainedAt:  time.Now(),
		Pipeline:   pipeline,
		Model:      model,
		Threshold:  threshold,
		Validation: metrics,
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	if err := s.artifacts.Save(ctx, artifact); err != nil {
		return nil, err
	}
	return artifact, nil
}

// churnLabels extracts and normalizes the Churn column. Requires both
// classes to be present.
func churnLabels(f *domain.Frame) ([]int, error) {
	col := f.Column("Churn")
	if col == nil {
		return nil, fmt.Errorf("column 'Churn' not found in training table")
	}

	y := make([]int, len(col))
	var pos, neg int
	for i, v := range col {
		switch strings.ToLower(strings.TrimSpace(v)) {
		case "1", "yes":
			y[i] = 1
			pos++
		default:
			y[i] = 0
			neg++
		}
	}
	if pos == 0 || neg == 0 {
		return nil, fmt.Errorf("training data has a single class; re-run preparation with stratification")
	}
	return y, nil
}

func selectLabels(y []int, indices []int) []int {
	out := make([]int, len(indices))
	for i, idx := range indices {
		out[i] = y[idx]
	}
	return out
}
