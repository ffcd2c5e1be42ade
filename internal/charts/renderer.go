// Package charts renders the run's standard charts into a single Excel
// workbook. It is a pure consumer of aggregation results and the cleaned
// totals column; nothing here feeds back into the pipeline.
package charts

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/xuri/excelize/v2"

	"github.com/iSMASHMAN/housing-group8-project/internal/analytics"
)

// Renderer writes chart workbooks.
type Renderer struct {
	logger *slog.Logger
}

// NewRenderer creates a chart renderer.
func NewRenderer(logger *slog.Logger) *Renderer {
	if logger == nil {
		logger = slog.Default()
	}
	return &Renderer{logger: logger}
}

// Workbook bundles the inputs for the four standard charts.
type Workbook struct {
	ItemCounts     []analytics.AggregateResult
	ItemQuantities []analytics.AggregateResult
	PaymentCounts  []analytics.AggregateResult
	Totals         []float64 // cleaned TotalSpent column, present values only
	HistogramBins  int
}

// Render writes the workbook to path: a column chart of transactions per
// item, a column chart of quantity sold per item, a pie chart of
// payment-method counts, and a column-chart histogram of the cleaned
// totals. Sheets with no data get their header row but no chart.
func (r *Renderer) Render(path string, wb Workbook) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := r.addAggregateSheet(f, "ItemCounts", "Transactions per Item", excelize.Col,
		wb.ItemCounts, func(res analytics.AggregateResult) float64 { return float64(res.Count) }); err != nil {
		return err
	}
	if err := r.addAggregateSheet(f, "ItemQuantities", "Quantity Sold per Item", excelize.Col,
		wb.ItemQuantities, func(res analytics.AggregateResult) float64 { return res.Sum }); err != nil {
		return err
	}
	if err := r.addAggregateSheet(f, "PaymentMethods", "Transactions per Payment Method", excelize.Pie,
		wb.PaymentCounts, func(res analytics.AggregateResult) float64 { return float64(res.Count) }); err != nil {
		return err
	}
	if err := r.addHistogramSheet(f, "TotalSpent", "Total Spent Distribution", wb.Totals, wb.HistogramBins); err != nil {
		return err
	}

	// The default sheet was replaced by the first data sheet.
	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	r.logger.Info("rendered chart workbook", slog.String("path", path))
	return nil
}

// addAggregateSheet writes one key/value data block and a chart over it.
func (r *Renderer) addAggregateSheet(f *excelize.File, sheet, title string, chartType excelize.ChartType,
	results []analytics.AggregateResult, metric func(analytics.AggregateResult) float64) error {

	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Group"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", title); err != nil {
		return err
	}

	for i, res := range results {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), res.Key); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), metric(res)); err != nil {
			return err
		}
	}

	if len(results) == 0 {
		r.logger.Warn("no data for chart, skipping", slog.String("sheet", sheet))
		return nil
	}

	return r.addChart(f, sheet, title, chartType, len(results))
}

// addHistogramSheet bins the totals and renders them as a column chart.
func (r *Renderer) addHistogramSheet(f *excelize.File, sheet, title string, totals []float64, bins int) error {
	if err := ensureSheet(f, sheet); err != nil {
		return err
	}

	if err := f.SetCellValue(sheet, "A1", "Bin"); err != nil {
		return err
	}
	if err := f.SetCellValue(sheet, "B1", "Rows"); err != nil {
		return err
	}

	hist := BuildHistogram(totals, bins)
	for i, bin := range hist {
		if err := f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), bin.Label); err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), bin.Count); err != nil {
			return err
		}
	}

	if len(hist) == 0 {
		r.logger.Warn("no data for chart, skipping", slog.String("sheet", sheet))
		return nil
	}

	return r.addChart(f, sheet, title, excelize.Col, len(hist))
}

func (r *Renderer) addChart(f *excelize.File, sheet, title string, chartType excelize.ChartType, rows int) error {
	err := f.AddChart(sheet, "D2", &excelize.Chart{
		Type: chartType,
		Series: []excelize.ChartSeries{{
			Name:       fmt.Sprintf("'%s'!$B$1", sheet),
			Categories: fmt.Sprintf("'%s'!$A$2:$A$%d", sheet, rows+1),
			Values:     fmt.Sprintf("'%s'!$B$2:$B$%d", sheet, rows+1),
		}},
		Title:    []excelize.RichTextRun{{Text: title}},
		PlotArea: excelize.ChartPlotArea{ShowVal: true},
		Legend:   excelize.ChartLegend{Position: "bottom"},
	})
	if err != nil {
		return fmt.Errorf("failed to add chart to %s: %w", sheet, err)
	}
	return nil
}

// ensureSheet creates the named sheet, reusing the workbook's default
// sheet for the first one so the output has no empty Sheet1.
func ensureSheet(f *excelize.File, name string) error {
	sheets := f.GetSheetList()
	if len(sheets) == 1 && sheets[0] == "Sheet1" {
		return f.SetSheetName("Sheet1", name)
	}
	_, err := f.NewSheet(name)
	return err
}
