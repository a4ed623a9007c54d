package fsstore

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
)

func sampleArtifact() *ml.ModelArtifact {
	return &ml.ModelArtifact{
		Pipeline: &ml.FeaturePipeline{
			NumericColumns: []string{"tenure"},
			Means:          []float64{24},
			Stds:           []float64{12},
			FeatureNames:   []string{"tenure"},
		},
		Model:      &ml.LogisticRegression{Weights: []float64{1.5}, Bias: -0.2},
		Threshold:  0.55,
		Validation: ml.EvalMetrics{F1: 0.8},
	}
}

func TestArtifactStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(filepath.Join(dir, "models", "churn_model.json"), filepath.Join(dir, "models", "threshold.json"))

	assert.NoError(t, store.Save(context.Background(), sampleArtifact()))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 0.55, loaded.Threshold)
	assert.Equal(t, []float64{1.5}, loaded.Model.Weights)
	assert.Equal(t, []string{"tenure"}, loaded.Pipeline.FeatureNames)
	assert.NoError(t, loaded.Validate())
}

func TestArtifactStore_ThresholdFileReadable(t *testing.T) {
	dir := t.TempDir()
	thresholdPath := filepath.Join(dir, "threshold.json")
	store := NewArtifactStore(filepath.Join(dir, "model.json"), thresholdPath)

	assert.NoError(t, store.Save(context.Background(), sampleArtifact()))

	data, err := os.ReadFile(thresholdPath)
	assert.NoError(t, err)
	var tf struct {
		BestThreshold float64 `json:"best_threshold"`
		F1            float64 `json:"f1"`
	}
	assert.NoError(t, json.Unmarshal(data, &tf))
	assert.Equal(t, 0.55, tf.BestThreshold)
	assert.Equal(t, 0.8, tf.F1)
}

func TestArtifactStore_LoadMissing(t *testing.T) {
	dir := t.TempDir()
	store := NewArtifactStore(filepath.Join(dir, "model.json"), filepath.Join(dir, "threshold.json"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrModelNotFound)
}

func TestArtifactStore_LoadCorrupt(t *testing.T) {
	dir := t.TempDir()
	modelPath := filepath.Join(dir, "model.json")
	assert.NoError(t, os.WriteFile(modelPath, []byte("not json"), 0o644))

	store := NewArtifactStore(modelPath, filepath.Join(dir, "threshold.json"))
	_, err := store.Load(context.Background())
	assert.ErrorContains(t, err, "decode model artifact")
}

func TestBaselineStore_SaveLoad(t *testing.T) {
	dir := t.TempDir()
	store := NewBaselineStore(filepath.Join(dir, "data", "baseline_train.csv"))

	f := domain.NewFrame([]string{"tenure", "Contract"})
	f.Rows = [][]string{{"12", "One year"}, {"24", "Two year"}}
	assert.NoError(t, store.Save(context.Background(), f))

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, f.Columns, loaded.Columns)
	assert.Equal(t, f.Rows, loaded.Rows)
}

func TestBaselineStore_LoadMissing(t *testing.T) {
	store := NewBaselineStore(filepath.Join(t.TempDir(), "baseline.csv"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrBaselineNotFound)
}

func TestReportStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "web", "drift_report.html")
	store := NewReportStore(path)

	html := "<html><body>" + strings.Repeat("report content ", 20) + "</body></html>"
	saved, err := store.Save(context.Background(), html)
	assert.NoError(t, err)
	assert.Equal(t, path, saved)
	assert.Equal(t, path, store.Path())

	loaded, err := store.Load(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, html, loaded)
}

func TestReportStore_LoadMissing(t *testing.T) {
	store := NewReportStore(filepath.Join(t.TempDir(), "report.html"))

	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}

func TestReportStore_TinyFileTreatedAsMissing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	assert.NoError(t, os.WriteFile(path, []byte("<html></html>"), 0o644))

	store := NewReportStore(path)
	_, err := store.Load(context.Background())
	assert.ErrorIs(t, err, domain.ErrReportNotFound)
}
