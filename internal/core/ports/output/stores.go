package ports

import (
	"context"

	"churn-prediction-service/internal/core/domain"
	"churn-prediction-service/internal/core/ml"
)

// ArtifactStore persists and loads the trained model artifact.
type ArtifactStore interface {
	Save(ctx context.Context, artifact *ml.ModelArtifact) error
	Load(ctx context.Context) (*ml.ModelArtifact, error)
}

// BaselineStore holds the training-time feature distribution snapshot used
// for drift comparison. Written once, never mutated.
type BaselineStore interface {
	Save(ctx context.Context, baseline *domain.Frame) error
	Load(ctx context.Context) (*domain.Frame, error)
}

// ReportStore persists the generated HTML report.
type ReportStore interface {
	Save(ctx context.Context, html string) (path string, err error)
	// Load returns the report content, or domain.ErrReportNotFound when no
	// meaningful report exists.
	Load(ctx context.Context) (html string, err error)
	Path() string
}
