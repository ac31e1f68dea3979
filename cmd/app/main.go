package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/osse101/StoneSplit_Go/internal/config"
	"github.com/osse101/StoneSplit_Go/internal/logger"
	"github.com/osse101/StoneSplit_Go/internal/metrics"
	"github.com/osse101/StoneSplit_Go/internal/report"
	"github.com/osse101/StoneSplit_Go/internal/sample"
	"github.com/osse101/StoneSplit_Go/internal/split"
	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/text/language"
)

func main() {
	// Defaults until the real configuration is known
	logger.InitLogger(logger.DefaultConfig())

	cfg, err := config.Load()
	if err != nil {
		logger.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	initLogger(cfg)

	ctx := logger.WithRunID(context.Background(), logger.GenerateRunID())

	warnings, err := config.ValidateEnvWithWarnings(cfg)
	if err != nil {
		logger.FromContext(ctx).Error("Environment check failed", "error", err)
		os.Exit(1)
	}
	for _, w := range warnings {
		logger.FromContext(ctx).Warn(w)
	}

	svc := split.NewService(metrics.NewSplitRecorder())
	if err := run(ctx, cfg, svc, os.Stdout, os.Stderr); err != nil {
		logger.FromContext(ctx).Error("Split failed", "error", err)
		os.Exit(1)
	}
}

// run splits the configured sample and prints one line per recipient to out.
// With MetricsDump set, the split metrics follow on metricsOut.
func run(ctx context.Context, cfg *config.Config, svc split.Service, out, metricsOut io.Writer) error {
	ds, ok := sample.Get(cfg.SampleName)
	if !ok {
		return fmt.Errorf("unknown sample %q", cfg.SampleName)
	}

	logger.FromContext(ctx).Info("Splitting sample", "sample", cfg.SampleName, "order", cfg.ReportOrder)

	plan, err := svc.Plan(ctx, ds.Items, ds.Recipients)
	if err != nil {
		return err
	}

	renderer := report.NewRenderer(language.Und)
	if cfg.ReportOrder == config.ReportOrderInput {
		err = renderer.RenderPlan(out, plan)
	} else {
		err = renderer.Render(out, plan.Result())
	}
	if err != nil {
		return fmt.Errorf("failed to render result: %w", err)
	}

	if cfg.MetricsDump {
		if err := metrics.Dump(metricsOut, prometheus.DefaultGatherer); err != nil {
			return fmt.Errorf("failed to dump metrics: %w", err)
		}
	}
	return nil
}
