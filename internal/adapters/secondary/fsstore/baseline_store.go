package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

// baselineStore keeps the training-time distribution snapshot as a CSV
// copy of the training table.
type baselineStore struct {
	path string
}

func NewBaselineStore(path string) ports.BaselineStore {
	return &baselineStore{path: path}
}

func (s *baselineStore) Save(_ context.Context, baseline *domain.Frame) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	out, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("save baseline: %w", err)
	}
	defer out.Close()
	return baseline.WriteCSV(out)
}

func (s *baselineStore) Load(_ context.Context) (*domain.Frame, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, domain.ErrBaselineNotFound
		}
		return nil, fmt.Errorf("load baseline: %w", err)
	}
	defer file.Close()
	return domain.ReadFrame(file)
}
