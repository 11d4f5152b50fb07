// Package convert turns raw pool and powerset directories into planner modules.
//
// Powers of one set are converted concurrently and reassembled in index
// order; sets of a batch are converted one after another.
package convert

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/udisondev/powerconv/internal/rawdata"
	"github.com/udisondev/powerconv/internal/render"
)

//go:generate go tool mockgen -destination=mock/sink.go -package=mock github.com/udisondev/powerconv/internal/convert Sink

// ErrSetNotFound is returned when a set directory has no index.json.
var ErrSetNotFound = errors.New("set not found")

// Sink persists converted sets, e.g. into the catalog database.
type Sink interface {
	StartRun(ctx context.Context, runID uuid.UUID, startedAt time.Time) error
	SaveSet(ctx context.Context, runID uuid.UUID, kind render.Kind, set *SetRecord) error
	FinishRun(ctx context.Context, report BatchReport) error
}

// Converter converts sets and writes their modules.
type Converter struct {
	workers int
	writer  *render.Writer
	sink    Sink
}

// Option configures a Converter.
type Option func(*Converter)

// WithWriter sets the module writer. Without one, WriteSet only persists to
// the sink.
func WithWriter(w *render.Writer) Option {
	return func(c *Converter) { c.writer = w }
}

// WithSink sets the catalog sink.
func WithSink(s Sink) Option {
	return func(c *Converter) { c.sink = s }
}

// New creates a Converter running up to workers power conversions at once.
func New(workers int, opts ...Option) *Converter {
	c := &Converter{workers: max(workers, 1)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ConvertSet reads spec.RawDir and converts every power listed in its index.
// Missing or unreadable power files are skipped with a warning.
func (c *Converter) ConvertSet(ctx context.Context, spec SetSpec) (*SetRecord, error) {
	idx, err := rawdata.ReadSetIndex(spec.RawDir)
	if err != nil {
		if errors.Is(err, rawdata.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrSetNotFound, spec)
		}
		return nil, fmt.Errorf("reading index of %s: %w", spec, err)
	}

	set := newSetRecord(spec, idx)
	results := make([]*PowerRecord, len(idx.PowerNames))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	for i, fullName := range idx.PowerNames {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			fileName := rawdata.PowerFileName(fullName)
			pf, err := rawdata.ReadPower(filepath.Join(spec.RawDir, fileName))
			switch {
			case errors.Is(err, rawdata.ErrNotFound):
				slog.Warn("power file not found", "set", spec.String(), "file", fileName)
				return nil
			case errors.Is(err, rawdata.ErrInvalidJSON):
				slog.Warn("skipping malformed power file", "set", spec.String(), "file", fileName, "err", err)
				return nil
			case err != nil:
				return err
			}

			rec := BuildPowerRecord(idx, i, fullName, pf)
			results[i] = &rec
			slog.Debug("converted power", "set", spec.String(), "power", rec.Name, "rank", rec.Rank)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("converting %s: %w", spec, err)
	}

	for _, rec := range results {
		if rec != nil {
			set.Powers = append(set.Powers, *rec)
		}
	}
	return set, nil
}

// WriteSet renders the set module and hands the set to the sink.
func (c *Converter) WriteSet(ctx context.Context, runID uuid.UUID, spec SetSpec, set *SetRecord) (render.WriteResult, error) {
	result := render.Unchanged

	if c.writer != nil {
		content, err := render.Module(render.ModuleInput{
			Kind:   spec.Kind,
			ID:     spec.ID,
			Name:   set.Name,
			Source: spec.RawDir,
			Data:   set,
		})
		if err != nil {
			return result, fmt.Errorf("rendering %s: %w", spec, err)
		}
		result, err = c.writer.Write(spec.OutputRel, content)
		if err != nil {
			return result, err
		}
	}

	if c.sink != nil {
		if err := c.sink.SaveSet(ctx, runID, spec.Kind, set); err != nil {
			return result, fmt.Errorf("saving %s: %w", spec, err)
		}
	}

	return result, nil
}
