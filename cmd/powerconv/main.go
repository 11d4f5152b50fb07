// Command powerconv converts raw power data into planner modules.
//
// Usage:
//
//	powerconv pool fighting "force of will"   # convert named pools
//	powerconv pool all                        # convert every configured pool
//	powerconv batch                           # convert the configured powerset groups
//	powerconv scripts                         # print <script> tags for pool modules
//	powerconv lint [dir]                      # report records with an icon but no effects
//	powerconv watch fighting                  # re-convert a pool when its raw files change
//	powerconv migrate                         # apply catalog migrations
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/udisondev/powerconv/internal/config"
)

type app struct {
	configPath string
	logLevel   string

	cfg config.Config
	out io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout).ExecuteContext(ctx); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:           "powerconv",
		Short:         "Convert raw power data into planner modules",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup()
		},
	}
	root.SetOut(out)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default $"+config.EnvConfigPath+" or "+config.DefaultPath+")")
	root.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error (overrides config)")

	root.AddCommand(
		a.poolCmd(),
		a.batchCmd(),
		a.watchCmd(),
		a.scriptsCmd(),
		a.lintCmd(),
		a.migrateCmd(),
	)
	return root
}

// setup loads .env, the config file and configures slog.
func (a *app) setup() error {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("loading .env: %w", err)
	}

	path := a.configPath
	if path == "" {
		path = config.Path()
	}
	cfg, err := config.Load(path)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}
	if a.logLevel != "" {
		cfg.LogLevel = a.logLevel
	}
	a.cfg = cfg

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.LogLevel),
	})))
	slog.Debug("config loaded",
		"path", path,
		"raw_data_dir", cfg.RawDataDir,
		"output_dir", cfg.OutputDir,
		"workers", cfg.Workers,
		"database", cfg.Database.Enabled)
	return nil
}

// timed runs fn and prints gendata-style progress lines.
func (a *app) timed(name string, fn func() error) error {
	start := time.Now()
	fmt.Fprintf(a.out, "[powerconv] running %s...\n", name)
	if err := fn(); err != nil {
		fmt.Fprintf(a.out, "[powerconv] FAILED %s: %v\n", name, err)
		return err
	}
	fmt.Fprintf(a.out, "[powerconv] %s done (%s)\n", name, time.Since(start).Round(time.Millisecond))
	return nil
}

// parseLogLevel converts string log level to slog.Level.
// Defaults to Info if invalid or empty.
func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
