package fsstore

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

// minReportSize guards against treating an empty or truncated file as a
// valid report.
const minReportSize = 100

type reportStore struct {
	path string
}

func NewReportStore(path string) ports.ReportStore {
	return &reportStore{path: path}
}

func (s *reportStore) Path() string { return s.path }

func (s *reportStore) Save(_ context.Context, html string) (string, error) {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(s.path, []byte(html), 0o644); err != nil {
		return "", fmt.Errorf("save report: %w", err)
	}
	return s.path, nil
}

func (s *reportStore) Load(_ context.Context) (string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", domain.ErrReportNotFound
		}
		return "", fmt.Errorf("load report: %w", err)
	}
	content := string(data)
	if len(strings.TrimSpace(content)) < minReportSize {
		return "", domain.ErrReportNotFound
	}
	return content, nil
}
