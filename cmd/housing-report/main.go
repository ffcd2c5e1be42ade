// Command housing-report cleans the housing transactions dataset, prints
// summary statistics and group aggregates, renders the standard chart
// workbook, and persists the cleaned CSV.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/google/uuid"

	"github.com/iSMASHMAN/housing-group8-project/internal/analytics"
	"github.com/iSMASHMAN/housing-group8-project/internal/charts"
	"github.com/iSMASHMAN/housing-group8-project/internal/cleaning"
	"github.com/iSMASHMAN/housing-group8-project/internal/config"
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	"github.com/iSMASHMAN/housing-group8-project/internal/exporter"
	"github.com/iSMASHMAN/housing-group8-project/internal/infrastructure"
	"github.com/iSMASHMAN/housing-group8-project/internal/report"
)

func main() {
	configFile := flag.String("config", "", "path to YAML config file (defaults to HOUSING_CONFIG)")
	dataDir := flag.String("data", "", "input directory for dataset files (overrides config)")
	outDir := flag.String("out", "", "output directory for reports (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}
	if *dataDir != "" {
		cfg.Paths.DataDir = *dataDir
	}
	if *outDir != "" {
		cfg.Paths.ReportsDir = *outDir
	}

	if err := cfg.Paths.EnsureDirectories(); err != nil {
		slog.Error("failed to create output directories", "error", err)
		os.Exit(1)
	}

	logger, closeLogger, err := infrastructure.InitializeLogger(cfg.Logging)
	if err != nil {
		slog.Error("failed to initialize logger", "error", err)
		os.Exit(1)
	}
	defer closeLogger()

	logger = logger.With(slog.String("run_id", uuid.NewString()))

	if err := run(logger, cfg); err != nil {
		logger.Error("run failed", "error", err)
		os.Exit(1)
	}
	logger.Info("run completed")
}

func run(logger *slog.Logger, cfg *config.Config) error {
	registry, err := dataset.LoadAll(logger, cfg.Paths.DataDir, cfg.Datasets.Required, cfg.Datasets.Optional...)
	if err != nil {
		return err
	}
	housing, _ := registry.Get(cfg.Datasets.Required)

	opts := cleaning.DefaultOptions()
	opts.MissingTokens = cfg.Cleaning.MissingTokens
	opts.Tolerance = cfg.Cleaning.Tolerance

	cleaned, err := cleaning.NewPipeline(logger, opts).Run(housing)
	if err != nil {
		return err
	}

	summary, err := analytics.Summarize(cleaned, dataset.ColTotalSpent)
	if err != nil {
		return fmt.Errorf("summarizing %s: %w", dataset.ColTotalSpent, err)
	}

	itemCounts, err := analytics.GroupBy(cleaned, dataset.ColItem, analytics.ModeCount, "")
	if err != nil {
		return err
	}
	itemQuantities, err := analytics.GroupBy(cleaned, dataset.ColItem, analytics.ModeSum, dataset.ColQuantity)
	if err != nil {
		return err
	}
	paymentCounts, err := analytics.GroupBy(cleaned, dataset.ColPaymentMethod, analytics.ModeCount, "")
	if err != nil {
		return err
	}

	topItem, err := analytics.ArgMax(itemCounts, analytics.ModeCount)
	if err != nil {
		return fmt.Errorf("selecting top item by count: %w", err)
	}
	topQuantity, err := analytics.ArgMax(itemQuantities, analytics.ModeSum)
	if err != nil {
		return fmt.Errorf("selecting top item by quantity: %w", err)
	}
	topPayment, err := analytics.ArgMax(paymentCounts, analytics.ModeCount)
	if err != nil {
		return fmt.Errorf("selecting top payment method: %w", err)
	}

	reporter := report.NewReporter(os.Stdout)
	if err := reporter.PrintSummary("TotalSpent statistics", summary); err != nil {
		return err
	}
	if err := reporter.PrintAggregates("Transactions per item", itemCounts, analytics.ModeCount, topItem); err != nil {
		return err
	}
	if err := reporter.PrintAggregates("Quantity sold per item", itemQuantities, analytics.ModeSum, topQuantity); err != nil {
		return err
	}
	if err := reporter.PrintAggregates("Transactions per payment method", paymentCounts, analytics.ModeCount, topPayment); err != nil {
		return err
	}

	writer := exporter.NewCSVWriter(&cfg.Paths, logger)
	cleanedName := cfg.Datasets.Required + "_cleaned.csv"
	if err := writer.WriteDataset(cleanedName, cleaned); err != nil {
		return fmt.Errorf("persisting cleaned dataset: %w", err)
	}

	workbook := charts.Workbook{
		ItemCounts:     itemCounts,
		ItemQuantities: itemQuantities,
		PaymentCounts:  paymentCounts,
		Totals:         cleaned.Numbers(dataset.ColTotalSpent),
		HistogramBins:  charts.DefaultHistogramBins,
	}
	chartPath := cfg.Paths.GetReportPath(cfg.Datasets.Required + "_charts.xlsx")
	if err := charts.NewRenderer(logger).Render(chartPath, workbook); err != nil {
		return fmt.Errorf("rendering charts: %w", err)
	}

	return nil
}
