package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"fittracker/internal/config"
	"fittracker/internal/driver"
	"fittracker/internal/observability"

	"go.uber.org/zap"
)

func main() {
	os.Exit(run(context.Background(), os.Stdout, os.Stderr))
}

// run prints one report line per built-in package to stdout and returns the
// process exit code.
func run(ctx context.Context, stdout, stderr io.Writer) int {

	// Config
	if err := loadDotEnv(".env"); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}

	// Logger
	if err := observability.InitLogger(cfg.LogLevel); err != nil {
		fmt.Fprintln(stderr, err)
		return 1
	}
	defer observability.SyncLogger()

	// Tracing, metrics, log export
	shutdown, err := initTelemetry(ctx, cfg)
	if err != nil {
		observability.Logger.Error("telemetry setup failed", zap.Error(err))
		return 1
	}
	defer func() {
		if err := shutdown(ctx); err != nil {
			observability.Logger.Warn("telemetry shutdown failed", zap.Error(err))
		}
	}()

	pkgs, err := driver.DefaultPackages()
	if err != nil {
		observability.Logger.Error("loading built-in packages failed", zap.Error(err))
		return 1
	}

	ctx, runID := observability.StartRun(ctx)

	sum, runErr := driver.New(stdout, cfg.OnError).Run(ctx, pkgs)

	if cfg.MetricsTextfile != "" {
		if err := observability.WriteMetricsTextfile(cfg.MetricsTextfile, observability.Registry); err != nil {
			observability.Logger.Warn("metrics textfile not written", zap.Error(err))
		}
	}

	if runErr != nil {
		observability.Logger.Error("run failed",
			zap.Error(runErr),
			zap.Int("processed", sum.Processed),
			zap.Int("failed", sum.Failed),
			zap.String("run_id", runID),
		)
		return 1
	}

	observability.Logger.Info("run completed",
		zap.Int("processed", sum.Processed),
		zap.String("run_id", runID),
	)
	return 0
}
