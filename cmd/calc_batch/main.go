// Command calc_batch runs a YAML suite of expressions through the calculator
// and reports mismatches against the expected postfix, result or error.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"

	"github.com/DjordjeVuckovic/in2post/internal/batch"
	"github.com/DjordjeVuckovic/in2post/internal/calc"
)

func main() {
	cfg := parseFlags()
	if err := cfg.validate(); err != nil {
		slog.Error("Invalid flags", "error", err)
		os.Exit(2)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	suite, err := batch.LoadFromFile(cfg.SuitePath)
	if err != nil {
		slog.Error("Failed to load suite", "path", cfg.SuitePath, "error", err)
		os.Exit(1)
	}

	var opts []batch.Option
	if cfg.Workers > 0 {
		opts = append(opts, batch.WithWorkers(cfg.Workers))
	}

	report, err := batch.NewRunner(calc.New(), opts...).Run(ctx, suite)
	if err != nil {
		slog.Error("Batch run failed", "error", err)
		os.Exit(1)
	}

	batch.WriteTable(report, os.Stdout)

	if cfg.Output != "" {
		if err := batch.WriteJSON(report, cfg.Output); err != nil {
			slog.Error("Failed to write report", "path", cfg.Output, "error", err)
			os.Exit(1)
		}
		slog.Info("Report written", "path", cfg.Output)
	}

	if !report.OK() {
		os.Exit(1)
	}
}
