package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/powerconv/internal/convert"
)

// RunRow is one stored conversion run.
type RunRow struct {
	ID         uuid.UUID
	StartedAt  time.Time
	FinishedAt *time.Time
	Total      int
	Succeeded  int
	Failed     int
}

// RunRepository records conversion runs.
type RunRepository struct {
	pool *pgxpool.Pool
}

// NewRunRepository creates a new RunRepository.
func NewRunRepository(pool *pgxpool.Pool) *RunRepository {
	return &RunRepository{pool: pool}
}

// Start inserts an unfinished run.
func (r *RunRepository) Start(ctx context.Context, id uuid.UUID, startedAt time.Time) error {
	if _, err := r.pool.Exec(ctx,
		`INSERT INTO conversion_runs (id, started_at) VALUES ($1, $2)`,
		id, startedAt,
	); err != nil {
		return fmt.Errorf("inserting run %s: %w", id, err)
	}
	return nil
}

// Finish stores the counters of a finished run.
func (r *RunRepository) Finish(ctx context.Context, report convert.BatchReport) error {
	tag, err := r.pool.Exec(ctx,
		`UPDATE conversion_runs
		 SET finished_at = $2, total = $3, succeeded = $4, failed = $5
		 WHERE id = $1`,
		report.RunID, report.StartedAt.Add(report.Duration),
		report.Total, report.Succeeded, report.Failed,
	)
	if err != nil {
		return fmt.Errorf("updating run %s: %w", report.RunID, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("run %s not started", report.RunID)
	}
	return nil
}

// Get returns a stored run.
// Returns nil, nil if the run does not exist.
func (r *RunRepository) Get(ctx context.Context, id uuid.UUID) (*RunRow, error) {
	var row RunRow
	err := r.pool.QueryRow(ctx,
		`SELECT id, started_at, finished_at, total, succeeded, failed
		 FROM conversion_runs WHERE id = $1`, id,
	).Scan(&row.ID, &row.StartedAt, &row.FinishedAt, &row.Total, &row.Succeeded, &row.Failed)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying run %s: %w", id, err)
	}
	return &row, nil
}
