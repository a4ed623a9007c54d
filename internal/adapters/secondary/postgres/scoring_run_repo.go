package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"churn-prediction-service/internal/core/domain"
	ports "churn-prediction-service/internal/core/ports/output"
)

type scoringRunRepo struct {
	pool *pgxpool.Pool
}

// NewScoringRunRepository creates a Postgres-backed ScoringRunRepository.
func NewScoringRunRepository(pool *pgxpool.Pool) ports.ScoringRunRepository {
	return &scoringRunRepo{pool: pool}
}

// Migrate creates the scoring_run table when it does not exist yet.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS scoring_run (
			id UUID PRIMARY KEY,
			created_at TIMESTAMPTZ NOT NULL,
			total_rows INT NOT NULL,
			churn_count INT NOT NULL,
			threshold DOUBLE PRECISION NOT NULL,
			k_value INT NOT NULL,
			duration_ms BIGINT NOT NULL
		)
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return fmt.Errorf("migrate scoring_run: %w", err)
	}
	return nil
}

func (r *scoringRunRepo) Record(ctx context.Context, run *domain.ScoringRun) error {
	query := `
		INSERT INTO scoring_run
			(id, created_at, total_rows, churn_count, threshold, k_value, duration_ms)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`

	_, err := r.pool.Exec(ctx, query,
		run.ID, run.CreatedAt, run.TotalRows, run.ChurnCount,
		run.Threshold, run.KValue, run.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("record scoring run: %w", err)
	}
	return nil
}
