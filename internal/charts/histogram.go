package charts

import (
	"fmt"
	"math"
)

// DefaultHistogramBins is the bin count used when the caller does not
// choose one.
const DefaultHistogramBins = 10

// HistogramBin is one fixed-width bin of a value distribution.
type HistogramBin struct {
	Label string
	Count int
}

// BuildHistogram splits values into fixed-width bins spanning
// [min, max]. All-equal input collapses to a single bin; empty input
// yields nil.
func BuildHistogram(values []float64, bins int) []HistogramBin {
	if len(values) == 0 {
		return nil
	}
	if bins <= 0 {
		bins = DefaultHistogramBins
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	if lo == hi {
		return []HistogramBin{{
			Label: fmt.Sprintf("%.2f", lo),
			Count: len(values),
		}}
	}

	width := (hi - lo) / float64(bins)
	out := make([]HistogramBin, bins)
	for i := range out {
		out[i].Label = fmt.Sprintf("%.2f to %.2f", lo+float64(i)*width, lo+float64(i+1)*width)
	}

	for _, v := range values {
		idx := int((v - lo) / width)
		if idx >= bins { // the maximum lands in the last bin
			idx = bins - 1
		}
		out[idx].Count++
	}
	return out
}
