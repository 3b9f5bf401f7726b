// cmd/fastfood-insights/main.go
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"fastfood-insights/internal/config"
	"fastfood-insights/internal/pipeline"
)

var (
	input   = flag.String("input", "", "Path to the input CSV (overrides FASTFOOD_INPUT_PATH)")
	dbPath  = flag.String("db-path", "", "Path to the SQLite backing store (overrides FASTFOOD_DB_PATH)")
	output  = flag.String("output", "", "Path for the enriched CSV (overrides FASTFOOD_OUTPUT_PATH)")
	chart   = flag.String("chart", "", "Path for the ranking chart workbook (overrides FASTFOOD_CHART_PATH)")
	version = flag.Bool("version", false, "Show version")
)

func main() {
	flag.Parse()

	if *version {
		fmt.Println("fastfood-insights version 1.0.0")
		os.Exit(0)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Flags override the environment when set
	if *input != "" {
		cfg.InputPath = *input
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *output != "" {
		cfg.OutputPath = *output
	}
	if *chart != "" {
		cfg.ChartPath = *chart
	}

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	}))

	p, err := pipeline.New(cfg, logger)
	if err != nil {
		logger.Error("failed to create pipeline", slog.Any("error", err))
		os.Exit(1)
	}

	// Interrupts cancel the context so in-flight store operations stop cleanly
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	runErr := p.Run(ctx)
	if err := p.Close(); err != nil {
		logger.Error("failed to close backing store", slog.Any("error", err))
	}
	if runErr != nil {
		logger.Error("pipeline run failed", slog.Any("error", runErr))
		os.Exit(1)
	}

	logger.Info("pipeline run complete",
		slog.String("output", cfg.OutputPath),
		slog.String("chart", cfg.ChartPath))
}
