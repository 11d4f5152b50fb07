package main

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/udisondev/powerconv/internal/convert"
	"github.com/udisondev/powerconv/internal/db"
	"github.com/udisondev/powerconv/internal/render"
)

func (a *app) poolCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "pool <name>... | pool all",
		Short: "Convert power pools",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), "pool", convert.PoolSpecs(a.cfg, args))
		},
	}
}

func (a *app) batchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Convert every configured powerset group",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.convert(cmd.Context(), "batch", convert.BatchSpecs(a.cfg))
		},
	}
}

func (a *app) watchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <pool>",
		Short: "Re-convert a pool whenever its raw files change",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			conv, closeFn, err := a.newConverter(cmd.Context())
			if err != nil {
				return err
			}
			defer closeFn()

			debounce := time.Duration(a.cfg.WatchDebounceMs) * time.Millisecond
			return conv.Watch(cmd.Context(), convert.PoolSpec(a.cfg, args[0]), debounce, func(r convert.BatchReport) {
				a.printReport(r)
			})
		},
	}
}

// newConverter wires the module writer and, when enabled, the catalog store.
func (a *app) newConverter(ctx context.Context) (*convert.Converter, func(), error) {
	writer, err := render.NewWriter(a.cfg.OutputDir)
	if err != nil {
		return nil, nil, err
	}
	opts := []convert.Option{convert.WithWriter(writer)}
	closeFn := func() {}

	if a.cfg.Database.Enabled {
		database, err := db.New(ctx, a.cfg.Database.DSN())
		if err != nil {
			return nil, nil, err
		}
		opts = append(opts, convert.WithSink(db.NewStore(database.Pool())))
		closeFn = database.Close
	}

	return convert.New(a.cfg.Workers, opts...), closeFn, nil
}

func (a *app) convert(ctx context.Context, name string, specs []convert.SetSpec) error {
	return a.timed(name, func() error {
		conv, closeFn, err := a.newConverter(ctx)
		if err != nil {
			return err
		}
		defer closeFn()

		report, err := conv.Run(ctx, specs)
		if err != nil {
			return err
		}
		a.printReport(report)
		if report.Failed > 0 {
			return fmt.Errorf("%d of %d sets failed", report.Failed, report.Total)
		}
		return ctx.Err()
	})
}

func (a *app) printReport(r convert.BatchReport) {
	fmt.Fprintf(a.out, "[powerconv] sets: %d converted, %d failed (%d powers; %d written, %d unchanged)\n",
		r.Succeeded, r.Failed, r.Powers, r.Written, r.Unchanged)
	for _, f := range r.Failures {
		fmt.Fprintf(a.out, "[powerconv]   %s: %v\n", f.Set, f.Err)
	}
}
