package db

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/udisondev/powerconv/internal/convert"
	"github.com/udisondev/powerconv/internal/effects"
	"github.com/udisondev/powerconv/internal/render"
)

// PowerEffects is the stored effect summary of one power.
type PowerEffects struct {
	Position     int
	FullName     string
	Name         string
	Effects      effects.Summary
	Enhancements []string
}

// SetRepository stores converted sets and their powers.
type SetRepository struct {
	pool *pgxpool.Pool
}

// NewSetRepository creates a new SetRepository.
func NewSetRepository(pool *pgxpool.Pool) *SetRepository {
	return &SetRepository{pool: pool}
}

// SaveSet upserts the set and replaces its powers in one transaction.
// A zero runID stores the set without a run reference.
func (r *SetRepository) SaveSet(ctx context.Context, runID uuid.UUID, kind render.Kind, set *convert.SetRecord) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin transaction for set %s: %w", set.ID, err)
	}
	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			slog.Error("set rollback failed", "set", set.ID, "err", err)
		}
	}()

	if err := r.SaveSetTx(ctx, tx, runID, kind, set); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing set %s: %w", set.ID, err)
	}
	return nil
}

// SaveSetTx is SaveSet within an existing transaction.
func (r *SetRepository) SaveSetTx(ctx context.Context, tx pgx.Tx, runID uuid.UUID, kind render.Kind, set *convert.SetRecord) error {
	run := uuid.NullUUID{UUID: runID, Valid: runID != uuid.Nil}

	if _, err := tx.Exec(ctx,
		`INSERT INTO power_sets (kind, archetype, id, name, payload, run_id, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 ON CONFLICT (kind, archetype, id) DO UPDATE SET
		  name = EXCLUDED.name, payload = EXCLUDED.payload,
		  run_id = EXCLUDED.run_id, updated_at = EXCLUDED.updated_at`,
		string(kind), set.Archetype, set.ID, set.Name, set, run, time.Now(),
	); err != nil {
		return fmt.Errorf("upserting set %s: %w", set.ID, err)
	}

	if _, err := tx.Exec(ctx,
		`DELETE FROM powers WHERE set_kind = $1 AND set_archetype = $2 AND set_id = $3`,
		string(kind), set.Archetype, set.ID,
	); err != nil {
		return fmt.Errorf("deleting powers of set %s: %w", set.ID, err)
	}

	if len(set.Powers) == 0 {
		return nil
	}

	rows := make([][]any, 0, len(set.Powers))
	for _, p := range set.Powers {
		rows = append(rows, []any{
			string(kind), set.Archetype, set.ID, p.Rank,
			p.FullName, p.Name, p.Effects, p.AllowedEnhancements,
		})
	}

	_, err := tx.CopyFrom(ctx,
		pgx.Identifier{"powers"},
		[]string{"set_kind", "set_archetype", "set_id", "position", "full_name", "name", "effects", "enhancements"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return fmt.Errorf("inserting powers of set %s: %w", set.ID, err)
	}

	slog.Debug("saved set", "kind", kind, "set", set.ID, "powers", len(set.Powers))
	return nil
}

// LoadSet returns the stored payload of a set.
// Returns nil, nil if the set is not stored.
func (r *SetRepository) LoadSet(ctx context.Context, kind render.Kind, archetype, id string) (*convert.SetRecord, error) {
	var set convert.SetRecord
	err := r.pool.QueryRow(ctx,
		`SELECT payload FROM power_sets WHERE kind = $1 AND archetype = $2 AND id = $3`,
		string(kind), archetype, id,
	).Scan(&set)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying set %s/%s: %w", kind, id, err)
	}
	return &set, nil
}

// LoadEffects returns the powers of a set ordered by position.
func (r *SetRepository) LoadEffects(ctx context.Context, kind render.Kind, archetype, id string) ([]PowerEffects, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT position, full_name, name, effects, enhancements
		 FROM powers
		 WHERE set_kind = $1 AND set_archetype = $2 AND set_id = $3
		 ORDER BY position`,
		string(kind), archetype, id)
	if err != nil {
		return nil, fmt.Errorf("querying powers of %s/%s: %w", kind, id, err)
	}
	defer rows.Close()

	var result []PowerEffects
	for rows.Next() {
		var p PowerEffects
		if err := rows.Scan(&p.Position, &p.FullName, &p.Name, &p.Effects, &p.Enhancements); err != nil {
			return nil, fmt.Errorf("scanning power row: %w", err)
		}
		result = append(result, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating power rows: %w", err)
	}
	return result, nil
}
