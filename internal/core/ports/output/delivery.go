package ports

import (
	"context"

	"churn-prediction-service/internal/core/domain"
)

// Mailer delivers a composed email. Implementations translate transport
// failures into the domain SMTP errors so callers can classify them.
type Mailer interface {
	Send(ctx context.Context, msg *domain.EmailMessage) error
}

// ReportRenderer turns report data into a self-contained HTML document.
type ReportRenderer interface {
	Render(data *domain.ReportData) (string, error)
}

// ScoringRunRepository records prediction request summaries. Optional at
// runtime; a nil repository disables history.
type ScoringRunRepository interface {
	Record(ctx context.Context, run *domain.ScoringRun) error
}
