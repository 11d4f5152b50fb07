package db

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/powerconv/internal/convert"
	"github.com/udisondev/powerconv/internal/render"
)

// Store persists conversion output into the catalog.
type Store struct {
	Sets *SetRepository
	Runs *RunRepository
}

var _ convert.Sink = (*Store)(nil)

// NewStore creates a Store over pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{
		Sets: NewSetRepository(pool),
		Runs: NewRunRepository(pool),
	}
}

func (s *Store) StartRun(ctx context.Context, runID uuid.UUID, startedAt time.Time) error {
	return s.Runs.Start(ctx, runID, startedAt)
}

func (s *Store) SaveSet(ctx context.Context, runID uuid.UUID, kind render.Kind, set *convert.SetRecord) error {
	return s.Sets.SaveSet(ctx, runID, kind, set)
}

func (s *Store) FinishRun(ctx context.Context, report convert.BatchReport) error {
	return s.Runs.Finish(ctx, report)
}
