package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/udisondev/powerconv/internal/config"
	"github.com/udisondev/powerconv/internal/render"
)

const poolRawSubdir = "pool"

// SetFailure records why a set of a batch failed.
type SetFailure struct {
	Set string
	Err error
}

// BatchReport summarises a batch run.
type BatchReport struct {
	RunID     uuid.UUID
	StartedAt time.Time
	Duration  time.Duration

	Total     int
	Succeeded int
	Failed    int
	Written   int
	Unchanged int
	Powers    int

	Failures []SetFailure
}

// Run converts and writes every set in order. A failing set is recorded and
// the batch moves on; the returned error is reserved for failures of the
// output tree or the sink bookkeeping. A cancelled context stops the batch
// before the next set.
func (c *Converter) Run(ctx context.Context, specs []SetSpec) (BatchReport, error) {
	report := BatchReport{RunID: uuid.New(), StartedAt: time.Now()}

	if c.sink != nil {
		if err := c.sink.StartRun(ctx, report.RunID, report.StartedAt); err != nil {
			return report, fmt.Errorf("starting run: %w", err)
		}
	}

	for _, spec := range specs {
		if ctx.Err() != nil {
			slog.Warn("batch cancelled", "remaining_from", spec.String())
			break
		}
		report.Total++

		start := time.Now()
		set, err := c.ConvertSet(ctx, spec)
		if err == nil {
			var res render.WriteResult
			res, err = c.WriteSet(ctx, report.RunID, spec, set)
			if err == nil {
				report.Succeeded++
				report.Powers += len(set.Powers)
				if res == render.Unchanged {
					report.Unchanged++
				} else {
					report.Written++
				}
				slog.Info("converted set",
					"set", spec.String(),
					"powers", len(set.Powers),
					"output", res.String(),
					"took", time.Since(start).Round(time.Millisecond))
				continue
			}
		}

		report.Failed++
		report.Failures = append(report.Failures, SetFailure{Set: spec.String(), Err: err})
		slog.Error("set conversion failed", "set", spec.String(), "err", err)
	}

	report.Duration = time.Since(report.StartedAt)

	if c.writer != nil {
		if err := c.writer.Flush(); err != nil {
			return report, err
		}
	}
	if c.sink != nil {
		if err := c.sink.FinishRun(context.WithoutCancel(ctx), report); err != nil {
			return report, fmt.Errorf("finishing run: %w", err)
		}
	}

	slog.Info("batch finished",
		"run_id", report.RunID,
		"total", report.Total,
		"succeeded", report.Succeeded,
		"failed", report.Failed,
		"written", report.Written,
		"unchanged", report.Unchanged,
		"took", report.Duration.Round(time.Millisecond))

	return report, nil
}

// NormalizeSetName lower-cases a user supplied set name and replaces spaces
// with underscores ("Force of Will" → "force_of_will").
func NormalizeSetName(name string) string {
	return strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), " ", "_")
}

// PoolSpec builds the spec of a power pool.
func PoolSpec(cfg config.Config, name string) SetSpec {
	id := NormalizeSetName(name)
	return SetSpec{
		Kind:      render.KindPool,
		ID:        id,
		RawDir:    filepath.Join(cfg.RawDataDir, poolRawSubdir, id),
		OutputRel: path.Join(render.PoolsDir, id+".js"),
	}
}

// PoolSpecs builds specs for the named pools; "all" expands to cfg.Pools.
func PoolSpecs(cfg config.Config, names []string) []SetSpec {
	if len(names) == 1 && names[0] == "all" {
		names = cfg.Pools
	}
	specs := make([]SetSpec, 0, len(names))
	for _, n := range names {
		specs = append(specs, PoolSpec(cfg, n))
	}
	return specs
}

// BatchSpecs builds powerset specs for every configured batch group.
// Output files use hyphens: powersets/<archetype>/fiery-aura.js.
func BatchSpecs(cfg config.Config) []SetSpec {
	var specs []SetSpec
	for _, group := range cfg.Batch {
		for _, ps := range group.Powersets {
			id := NormalizeSetName(ps)
			specs = append(specs, SetSpec{
				Kind:      render.KindPowerset,
				ID:        id,
				Archetype: group.Archetype,
				RawDir:    filepath.Join(cfg.RawDataDir, group.RawSubdir, id),
				OutputRel: path.Join(render.PowersetsDir, group.Archetype, render.RegistryKey(render.KindPowerset, id)+".js"),
			})
		}
	}
	return specs
}
