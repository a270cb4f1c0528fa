// cmd/scanforge/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"scanforge/internal/adapters/output"
	"scanforge/internal/builder"
	"scanforge/internal/core/ports"
	"scanforge/internal/core/usecases"
	"scanforge/internal/normalize"
	"scanforge/internal/platform/config"
	"scanforge/internal/platform/logx"
	"scanforge/internal/platform/paths"
	"scanforge/internal/registry"
	"scanforge/internal/runner"
)

var (
	// Set with -ldflags at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cfg, err := config.Load(os.Args[1:])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: configuration load failed: %v\n", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Printf("scanforge %s (commit %s, built %s)\n", version, commit, date)
		return
	}

	if cfg.Target == "" {
		fmt.Fprintln(os.Stderr, "Error: target is required")
		fmt.Fprintln(os.Stderr, "Usage: scanforge -t <url|host|path> [--tools id,id,...]")
		fmt.Fprintln(os.Stderr, "Try: scanforge -h for help")
		os.Exit(2)
	}

	logger := logx.New()
	logger.Info("scanforge starting",
		"version", version,
		"target", cfg.Target,
		"workers", cfg.Workers,
	)

	ctx, cancel := rootContextWithSignals()
	defer cancel()

	catalog := registry.NewCatalog(logger)
	if cfg.CatalogFile != "" {
		if err := catalog.LoadFile(cfg.CatalogFile); err != nil {
			logger.Err(err, "phase", "catalog-load")
			os.Exit(2)
		}
	}

	selected := cfg.Tools
	if len(selected) == 0 {
		for _, d := range catalog.List() {
			selected = append(selected, d.ID)
		}
	}

	var sink ports.ProgressSink = output.NewConsoleSink(cfg.Quiet)
	if !cfg.Quiet {
		output.PrintHeader(cfg.Target, len(selected), cfg.Workers)
	}

	exec := usecases.NewExecutor(usecases.ExecutorOptions{
		Catalog:   catalog,
		Resolver:  paths.NewResolver(),
		Runner:    runner.NewExecRunner(logger),
		Build:     builder.Build,
		Pipeline:  builder.BuildPipeline,
		Normalize: normalize.Normalize,
		Sink:      sink,
		Logger:    logger,
		Workers:   cfg.Workers,
		Wordlist:  cfg.Wordlist,
	})

	start := time.Now()
	findings, runErr := exec.Run(ctx, cfg.Target, selected)
	elapsed := time.Since(start)

	// Run only fails on an invalid target; tool-level failures are
	// findings or rollup lines, never errors.
	if runErr != nil {
		logger.Err(runErr, "phase", "validation", "elapsed_ms", elapsed.Milliseconds())
		os.Exit(2)
	}

	report := output.Report{
		RunID:     fmt.Sprintf("run-%d", start.Unix()),
		Target:    cfg.Target,
		StartedAt: start.UTC(),
		Duration:  elapsed.Round(time.Millisecond).String(),
		Tools:     selected,
		Findings:  findings,
	}
	if err := writeReports(cfg, report); err != nil {
		logger.Err(err, "phase", "output")
		os.Exit(1)
	}

	if !cfg.Quiet {
		output.PrintSummary(findings)
	}

	logger.Info("scanforge finished",
		"elapsed_ms", elapsed.Milliseconds(),
		"findings", len(findings),
	)
}

// writeReports persists the run in both formats. Isolated from main so
// new formats slot in without touching the wiring.
func writeReports(cfg config.Config, report output.Report) error {
	if _, err := output.WriteJSON(cfg.OutputDir, report); err != nil {
		return fmt.Errorf("json report: %w", err)
	}
	if _, err := output.WriteYAML(cfg.OutputDir, report); err != nil {
		return fmt.Errorf("yaml report: %w", err)
	}
	return nil
}

// rootContextWithSignals creates the root context cancelled by SIGINT or
// SIGTERM.
func rootContextWithSignals() (context.Context, context.CancelFunc) {
	base, baseCancel := context.WithCancel(context.Background())

	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		select {
		case <-ch:
			baseCancel()
		case <-base.Done():
		}
	}()

	cleanup := func() {
		signal.Stop(ch)
		close(ch)
		baseCancel()
	}
	return base, cleanup
}
