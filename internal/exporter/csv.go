// Package exporter persists datasets and report tables as CSV files.
package exporter

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/iSMASHMAN/housing-group8-project/internal/config"
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// CSVWriter writes CSV files into the configured reports directory.
type CSVWriter struct {
	paths  *config.PathsConfig
	logger *slog.Logger
}

// NewCSVWriter creates a new CSV writer instance.
func NewCSVWriter(paths *config.PathsConfig, logger *slog.Logger) *CSVWriter {
	if logger == nil {
		logger = slog.Default()
	}
	return &CSVWriter{paths: paths, logger: logger}
}

// WriteOptions configures CSV writing behavior.
type WriteOptions struct {
	Headers   []string
	Records   [][]string
	BOMPrefix bool // add UTF-8 BOM so Excel detects the encoding
}

// WriteCSV writes headers and records to filePath, resolved relative to
// the reports directory unless absolute.
func (w *CSVWriter) WriteCSV(filePath string, options WriteOptions) error {
	fullPath := w.resolvePath(filePath)

	w.logger.Info("writing CSV file",
		slog.String("path", fullPath),
		slog.Int("record_count", len(options.Records)))

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	defer file.Close()

	if options.BOMPrefix {
		if _, err := file.Write([]byte{0xEF, 0xBB, 0xBF}); err != nil {
			return fmt.Errorf("failed to write BOM: %w", err)
		}
	}

	writer := csv.NewWriter(file)
	defer writer.Flush()

	if len(options.Headers) > 0 {
		if err := writer.Write(options.Headers); err != nil {
			return fmt.Errorf("failed to write headers: %w", err)
		}
	}
	for i, record := range options.Records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write record %d: %w", i, err)
		}
	}

	return writer.Error()
}

// WriteDataset persists ds at filePath: one header row with the dataset's
// columns, one record per row. Absent cells encode as empty fields and
// numbers use a round-trippable representation, so loading the file back
// reproduces the cleaned columns.
func (w *CSVWriter) WriteDataset(filePath string, ds *dataset.Dataset) error {
	records := make([][]string, ds.Len())
	for i := range ds.Rows {
		record := make([]string, len(ds.Columns))
		for j, col := range ds.Columns {
			// Value.String encodes Absent as an empty field and numbers
			// with full round-trip precision.
			record[j] = ds.Cell(i, col).String()
		}
		records[i] = record
	}

	return w.WriteCSV(filePath, WriteOptions{
		Headers:   ds.Columns,
		Records:   records,
		BOMPrefix: true,
	})
}

func (w *CSVWriter) resolvePath(filePath string) string {
	if filepath.IsAbs(filePath) {
		return filePath
	}
	return w.paths.GetReportPath(filePath)
}
