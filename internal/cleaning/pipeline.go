package cleaning

import (
	"fmt"
	"log/slog"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// Options configures one pipeline run.
type Options struct {
	MissingTokens      []string
	NumericColumns     []string
	NonNegativeColumns []string
	QuantityColumn     string
	PriceColumn        string
	TotalColumn        string
	Tolerance          float64
}

// DefaultOptions returns the standard configuration for the housing
// transactions schema.
func DefaultOptions() Options {
	return Options{
		MissingTokens:      DefaultMissingTokens,
		NumericColumns:     []string{dataset.ColQuantity, dataset.ColPricePerUnit, dataset.ColTotalSpent},
		NonNegativeColumns: []string{dataset.ColQuantity, dataset.ColPricePerUnit},
		QuantityColumn:     dataset.ColQuantity,
		PriceColumn:        dataset.ColPricePerUnit,
		TotalColumn:        dataset.ColTotalSpent,
		Tolerance:          DefaultTolerance,
	}
}

// Pipeline runs the cleaning stages in order over a single dataset. It is
// synchronous and owns the dataset exclusively for the duration of Run; a
// failed stage aborts the remaining stages.
type Pipeline struct {
	logger *slog.Logger
	opts   Options
}

// NewPipeline creates a pipeline with the given options.
func NewPipeline(logger *slog.Logger, opts Options) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	return &Pipeline{logger: logger, opts: opts}
}

// Run normalizes, coerces, sanitizes, reconciles and filters ds, mutating
// it in place through the first four stages and returning the filtered
// cleaned dataset. The input's row slice is left as-is; callers needing
// the pre-clean rows should Clone first.
func (p *Pipeline) Run(ds *dataset.Dataset) (*dataset.Dataset, error) {
	normalized := NormalizeMissing(ds, p.opts.MissingTokens)
	p.logger.Info("normalized missing-value sentinels",
		slog.String("dataset", ds.Name),
		slog.Int("cells", normalized))

	if err := CoerceNumeric(ds, p.opts.NumericColumns); err != nil {
		return nil, fmt.Errorf("coercing numeric columns: %w", err)
	}
	p.logger.Info("coerced numeric columns",
		slog.String("dataset", ds.Name),
		slog.Any("columns", p.opts.NumericColumns))

	clamped := ClampNegative(ds, p.opts.NonNegativeColumns)
	p.logger.Info("sanitized negative values",
		slog.String("dataset", ds.Name),
		slog.Int("cells", clamped))

	stats := ReconcileTotals(ds, p.opts.QuantityColumn, p.opts.PriceColumn, p.opts.TotalColumn, p.opts.Tolerance)
	p.logger.Info("reconciled totals",
		slog.String("dataset", ds.Name),
		slog.Int("filled", stats.Filled),
		slog.Int("corrected", stats.Corrected),
		slog.Int("untouched", stats.Untouched))

	cleaned := FilterPresent(ds, p.opts.TotalColumn)
	p.logger.Info("filtered rows without a valid total",
		slog.String("dataset", ds.Name),
		slog.Int("rows_in", ds.Len()),
		slog.Int("rows_out", cleaned.Len()),
		slog.Int("rows_dropped", ds.Len()-cleaned.Len()))

	return cleaned, nil
}
