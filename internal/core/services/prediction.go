package services

import (
	"context"
	"math"
	"sort"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
	ports "churn-prediction-service/internal/core/ports/output"
)

// PredictionService scores uploaded customer tables against the trained
// artifact. The artifact is loaded once at construction and read-only
// afterwards.
type PredictionService struct {
	artifact *ml.ModelArtifact
	runs     ports.ScoringRunRepository
}

// NewPredictionService loads the trained artifact. A missing artifact is a
// startup failure.
func NewPredictionService(ctx context.Context, artifacts ports.ArtifactStore, runs ports.ScoringRunRepository) (*PredictionService, error) {
	artifact, err := artifacts.Load(ctx)
	if err != nil {
		return nil, err
	}
	if err := artifact.Validate(); err != nil {
		return nil, err
	}
	return &PredictionService{artifact: artifact, runs: runs}, nil
}

func (s *PredictionService) Threshold() float64 { return s.artifact.Threshold }

// ScoreBatch scores every row, attaches probabilities and risk levels to
// the original records, and returns the top-k by descending probability
// (all rows when k <= 0). The summary always covers the whole batch.
func (s *PredictionService) ScoreBatch(ctx context.Context, f *domain.Frame, k int) (*domain.BatchResult, error) {
	start := time.Now()

	probs, err := s.artifact.Score(f)
	if err != nil {
		return nil, err
	}

	threshold := s.artifact.Threshold
	churnCount := 0
	order := make([]int, len(probs))
	for i := range order {
		order[i] = i
		if probs[i] >= threshold {
			churnCount++
		}
	}
	sort.SliceStable(order, func(a, b int) bool {
		return probs[order[a]] > probs[order[b]]
	})

	if k > 0 && k < len(order) {
		order = order[:k]
	}

	rows := make([]domain.CustomerRow, len(order))
	for i, idx := range order {
		row := domain.CustomerRow{}
		for col, val := range f.RowMap(idx) {
			row[col] = val
		}
		row["churn_probability"] = probs[idx]
		row["prediction"] = boolToInt(probs[idx] >= threshold)
		row["risk_level"] = domain.RiskLevelFor(probs[idx])
		rows[i] = row
	}

	total := len(probs)
	result := &domain.BatchResult{
		Data: rows,
		Summary: domain.BatchSummary{
			TotalCustomers:    total,
			ChurnCount:        churnCount,
			NoChurnCount:      total - churnCount,
			ChurnPercentage:   percentage(churnCount, total),
			NoChurnPercentage: percentage(total-churnCount, total),
		},
		ThresholdUsed: threshold,
		KValueApplied: k,
	}

	s.recordRun(ctx, result, time.Since(start))
	return result, nil
}

func (s *PredictionService) recordRun(ctx context.Context, result *domain.BatchResult, elapsed time.Duration) {
	if s.runs == nil {
		return
	}
	run := &domain.ScoringRun{
		ID:         uuid.New(),
		CreatedAt:  time.Now(),
		TotalRows:  result.Summary.TotalCustomers,
		ChurnCount: result.Summary.ChurnCount,
		Threshold:  result.ThresholdUsed,
		KValue:     result.KValueApplied,
		Duration:   elapsed,
	}
	if err := s.runs.Record(ctx, run); err != nil {
		log.WithError(err).Warn("record scoring run failed")
	}
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return math.Round(10000*float64(part)/float64(total)) / 100
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
