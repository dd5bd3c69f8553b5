// Command training-report runs the full training analytics pipeline:
// generate the daily record sequence, write the tabular data artifacts,
// render the dashboard image, and save the comprehensive text report.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"tmscli/internal/config"
	"tmscli/internal/dashboard"
	"tmscli/internal/exporter"
	"tmscli/internal/metrics"
	"tmscli/internal/report"
)

func main() {
	startFlag := flag.String("start", "", "program start date as YYYY-MM-DD (defaults to config)")
	daysFlag := flag.Int("days", 0, "program length in calendar days (defaults to config)")
	outFlag := flag.String("out", "", "output directory for artifacts (defaults to config)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	if *startFlag != "" {
		cfg.Program.StartDate = *startFlag
	}
	if *daysFlag != 0 {
		cfg.Program.NumDays = *daysFlag
	}
	if *outFlag != "" {
		cfg.Paths.OutputDir = *outFlag
	}

	logger := newLogger(cfg.Logging).With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)

	if err := run(context.Background(), cfg, logger); err != nil {
		logger.Error("Pipeline failed", "error", err)
		os.Exit(1)
	}

	fmt.Println("1. training_data.csv - Raw data")
	fmt.Println("2. dashboard.png - Analytics Dashboard")
	fmt.Println("3. comprehensive_report.txt - Detailed analysis report")
}

func run(ctx context.Context, cfg *config.Config, logger *slog.Logger) error {
	startDate, err := time.Parse("2006-01-02", cfg.Program.StartDate)
	if err != nil {
		return fmt.Errorf("parse start date %q: %w", cfg.Program.StartDate, err)
	}

	// Output location is prepared explicitly, before any component runs.
	if err := cfg.EnsureDirs(); err != nil {
		return fmt.Errorf("prepare output location: %w", err)
	}

	gen := metrics.NewGenerator(logger, nil)
	seq, err := gen.Generate(ctx, metrics.Params{StartDate: startDate, NumDays: cfg.Program.NumDays})
	if err != nil {
		return fmt.Errorf("generate records: %w", err)
	}

	csvPath := cfg.ArtifactPath(config.TrainingDataCSV)
	if err := exporter.WriteCSV(seq, csvPath); err != nil {
		return fmt.Errorf("write training data CSV: %w", err)
	}
	logger.InfoContext(ctx, "saved training data", slog.String("path", csvPath), slog.Int("records", len(seq)))

	xlsxPath := cfg.ArtifactPath(config.TrainingDataXLSX)
	if err := exporter.WriteXLSX(seq, xlsxPath); err != nil {
		return fmt.Errorf("write training data workbook: %w", err)
	}
	logger.InfoContext(ctx, "saved training data workbook", slog.String("path", xlsxPath))

	att, err := metrics.AttendanceMetrics(seq)
	if err != nil {
		return fmt.Errorf("compute attendance metrics: %w", err)
	}
	trend, err := metrics.AttendanceTrend(seq)
	if err != nil {
		return fmt.Errorf("compute attendance trend: %w", err)
	}
	perf, err := metrics.PerformanceMetrics(seq)
	if err != nil {
		return fmt.Errorf("compute performance metrics: %w", err)
	}
	impact, err := metrics.AssessImpact(seq)
	if err != nil {
		return fmt.Errorf("assess impact: %w", err)
	}

	renderer := dashboard.NewRenderer(logger)
	if err := renderer.Render(cfg.ArtifactPath(config.DashboardPNG), seq, att, perf); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	composer := report.NewComposer(logger)
	text := composer.Compose(att, trend, perf, impact)
	if err := composer.Save(cfg.ArtifactPath(config.ReportTXT), text); err != nil {
		return fmt.Errorf("save comprehensive report: %w", err)
	}

	logger.InfoContext(ctx, "pipeline completed",
		slog.String("output_dir", cfg.Paths.OutputDir),
		slog.Int("records", len(seq)))

	return nil
}

func newLogger(cfg config.LoggingConfig) *slog.Logger {
	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.Format == "json" {
		handler = slog.NewJSONHandler(os.Stderr, opts)
	} else {
		handler = slog.NewTextHandler(os.Stderr, opts)
	}

	return slog.New(handler)
}
