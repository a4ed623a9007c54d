package fsstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
	ports "churn-prediction-service/internal/core/ports/output"
)

// artifactStore persists the trained model as JSON on the local filesystem.
// The threshold is additionally written to its own small file so operators
// can inspect it without parsing the full model.
type artifactStore struct {
	modelPath     string
	thresholdPath string
}

// NewArtifactStore creates a filesystem-backed ArtifactStore.
func NewArtifactStore(modelPath, thresholdPath string) ports.ArtifactStore {
	return &artifactStore{modelPath: modelPath, thresholdPath: thresholdPath}
}

type thresholdFile struct {
	BestThreshold float64 `json:"best_threshold"`
	F1            float64 `json:"f1"`
}

func (s *artifactStore) Save(_ context.Context, artifact *ml.ModelArtifact) error {
	if err := writeJSON(s.modelPath, artifact); err != nil {
		return fmt.Errorf("save model artifact: %w", err)
	}
	t := thresholdFile{BestThreshold: artifact.Threshold, F1: artifact.Validation.F1}
	if err := writeJSON(s.thresholdPath, t); err != nil {
		return fmt.Errorf("save threshold: %w", err)
	}
	return nil
}

func (s *artifactStore) Load(_ context.Context) (*ml.ModelArtifact, error) {
	data, err := os.ReadFile(s.modelPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrModelNotFound
		}
		return nil, fmt.Errorf("load model artifact: %w", err)
	}

	var artifact ml.ModelArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("decode model artifact: %w", err)
	}
	return &artifact, nil
}

func writeJSON(path string, v any) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	// write-then-rename so a failed run never leaves a partial artifact
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
