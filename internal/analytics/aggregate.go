// Package analytics derives group aggregates and summary statistics from
// the cleaned transactions dataset. Everything here reads the dataset and
// never mutates it.
package analytics

import (
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

// AggregateMode selects the metric computed per group.
type AggregateMode int

const (
	// ModeCount counts rows per group.
	ModeCount AggregateMode = iota
	// ModeSum sums a numeric column per group.
	ModeSum
)

// AggregateResult holds the aggregates for one distinct group value.
// Results are ordered by first encounter in the dataset's row order, which
// makes arg-max tie-breaking deterministic.
type AggregateResult struct {
	Key   string
	Count int
	Sum   float64
}

// Metric returns the value ArgMax compares for the given mode.
func (r AggregateResult) Metric(mode AggregateMode) float64 {
	if mode == ModeSum {
		return r.Sum
	}
	return float64(r.Count)
}

// GroupBy groups ds by the named categorical column and computes count and
// sum aggregates per distinct value. Rows whose group cell is absent are
// excluded and never form a group of their own; absent cells of sumCol
// contribute nothing to the sum. The group column (and sumCol, in ModeSum)
// must exist or GroupBy fails with a SchemaError.
func GroupBy(ds *dataset.Dataset, groupCol string, mode AggregateMode, sumCol string) ([]AggregateResult, error) {
	if !ds.HasColumn(groupCol) {
		return nil, apperrors.NewSchema(ds.Name, groupCol)
	}
	if mode == ModeSum && !ds.HasColumn(sumCol) {
		return nil, apperrors.NewSchema(ds.Name, sumCol)
	}

	index := make(map[string]int)
	var results []AggregateResult

	for i := range ds.Rows {
		key, ok := ds.Cell(i, groupCol).Text()
		if !ok {
			continue
		}

		at, seen := index[key]
		if !seen {
			at = len(results)
			index[key] = at
			results = append(results, AggregateResult{Key: key})
		}

		results[at].Count++
		if mode == ModeSum {
			if f, ok := ds.Cell(i, sumCol).Number(); ok {
				results[at].Sum += f
			}
		}
	}

	return results, nil
}

// ArgMax selects the group with the highest metric for the given mode.
// Ties break in favor of the earlier group, i.e. the one first encountered
// in row order. Zero groups fail with an EmptyInputError.
func ArgMax(results []AggregateResult, mode AggregateMode) (AggregateResult, error) {
	if len(results) == 0 {
		return AggregateResult{}, apperrors.NewEmptyInput("arg-max aggregation")
	}

	best := results[0]
	for _, r := range results[1:] {
		// Strict inequality keeps the first-encountered group on ties.
		if r.Metric(mode) > best.Metric(mode) {
			best = r
		}
	}
	return best, nil
}
