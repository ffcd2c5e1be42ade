package analytics

import (
	"fmt"

	"github.com/montanaflynn/stats"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

// Summary holds the descriptive statistics over one numeric column.
// Absent cells are excluded from every figure, so Count may be smaller
// than the dataset's row count.
type Summary struct {
	Count  int
	Mean   float64
	StdDev float64
	Min    float64
	Median float64
	Max    float64
	Sum    float64
}

// Summarize computes descriptive statistics over the present values of the
// named column. A missing column is a SchemaError; zero present values is
// an EmptyInputError, never a silent zero or NaN. StdDev is the sample
// standard deviation and reads as 0 for a single value.
func Summarize(ds *dataset.Dataset, column string) (*Summary, error) {
	if !ds.HasColumn(column) {
		return nil, apperrors.NewSchema(ds.Name, column)
	}

	values := ds.Numbers(column)
	if len(values) == 0 {
		return nil, apperrors.NewEmptyInput(fmt.Sprintf("summary statistics over %q", column))
	}

	data := stats.Float64Data(values)
	summary := &Summary{Count: len(values)}

	var err error
	if summary.Mean, err = stats.Mean(data); err != nil {
		return nil, fmt.Errorf("computing mean: %w", err)
	}
	if summary.Min, err = stats.Min(data); err != nil {
		return nil, fmt.Errorf("computing min: %w", err)
	}
	if summary.Median, err = stats.Median(data); err != nil {
		return nil, fmt.Errorf("computing median: %w", err)
	}
	if summary.Max, err = stats.Max(data); err != nil {
		return nil, fmt.Errorf("computing max: %w", err)
	}
	if summary.Sum, err = stats.Sum(data); err != nil {
		return nil, fmt.Errorf("computing sum: %w", err)
	}

	// Sample stddev needs at least two values to be defined.
	if len(values) > 1 {
		if summary.StdDev, err = stats.StandardDeviationSample(data); err != nil {
			return nil, fmt.Errorf("computing stddev: %w", err)
		}
	}

	return summary, nil
}
