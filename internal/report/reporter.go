// Package report renders summary statistics and aggregation results as
// human-readable text. The pipeline has no dependency on this output
// format; anything consuming the numbers should take them from the
// analytics package directly.
package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/iSMASHMAN/housing-group8-project/internal/analytics"
)

// Reporter writes text reports to a single destination.
type Reporter struct {
	out io.Writer
}

// NewReporter creates a reporter writing to out.
func NewReporter(out io.Writer) *Reporter {
	return &Reporter{out: out}
}

// PrintSummary renders the descriptive statistics table.
func (r *Reporter) PrintSummary(title string, s *analytics.Summary) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n", title); err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "  count\t%d\n", s.Count)
	fmt.Fprintf(w, "  mean\t%s\n", formatFloat(s.Mean))
	fmt.Fprintf(w, "  stddev\t%s\n", formatFloat(s.StdDev))
	fmt.Fprintf(w, "  min\t%s\n", formatFloat(s.Min))
	fmt.Fprintf(w, "  median\t%s\n", formatFloat(s.Median))
	fmt.Fprintf(w, "  max\t%s\n", formatFloat(s.Max))
	fmt.Fprintf(w, "  sum\t%s\n", formatFloat(s.Sum))
	return w.Flush()
}

// PrintAggregates renders one aggregation table and its arg-max winner.
func (r *Reporter) PrintAggregates(title string, results []analytics.AggregateResult, mode analytics.AggregateMode, top analytics.AggregateResult) error {
	if _, err := fmt.Fprintf(r.out, "\n%s\n", title); err != nil {
		return err
	}

	w := tabwriter.NewWriter(r.out, 0, 4, 2, ' ', 0)
	for _, res := range results {
		fmt.Fprintf(w, "  %s\t%s\n", res.Key, formatMetric(res, mode))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	_, err := fmt.Fprintf(r.out, "  top: %s (%s)\n", top.Key, formatMetric(top, mode))
	return err
}

// formatFloat renders a float with two decimal places, so 13.4 prints as
// 13.40 across all report tables.
func formatFloat(f float64) string {
	return fmt.Sprintf("%.2f", f)
}

func formatMetric(res analytics.AggregateResult, mode analytics.AggregateMode) string {
	if mode == analytics.ModeSum {
		return formatFloat(res.Sum)
	}
	return fmt.Sprintf("%d", res.Count)
}
