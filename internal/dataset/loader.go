package dataset

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"

	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

// Load reads the named dataset from dir, trying <name>.csv first and then
// <name>.xlsx. The first row supplies the column names; every cell loads
// as Text so the pipeline's own stages decide what is numeric. A dataset
// with neither file present returns apperrors.ErrDatasetNotFound.
func Load(name, dir string) (*Dataset, error) {
	csvPath := filepath.Join(dir, name+".csv")
	if _, err := os.Stat(csvPath); err == nil {
		return loadCSV(name, csvPath)
	}

	xlsxPath := filepath.Join(dir, name+".xlsx")
	if _, err := os.Stat(xlsxPath); err == nil {
		return loadExcel(name, xlsxPath)
	}

	return nil, fmt.Errorf("dataset %q in %s: %w", name, dir, apperrors.ErrDatasetNotFound)
}

func loadCSV(name, path string) (*Dataset, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1 // tolerate ragged rows; short rows pad as Absent

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return fromRecords(name, records), nil
}

func loadExcel(name, path string) (*Dataset, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, fmt.Errorf("no sheets in %s", path)
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %q: %w", sheets[0], err)
	}

	return fromRecords(name, rows), nil
}

// fromRecords builds a dataset from raw string records. The header row is
// trimmed of surrounding whitespace; data cells are loaded verbatim so the
// missing-value normalizer sees sentinel tokens exactly as written.
func fromRecords(name string, records [][]string) *Dataset {
	if len(records) == 0 {
		return New(name, nil)
	}

	columns := make([]string, len(records[0]))
	for i, h := range records[0] {
		// A leading BOM (written by our own exporter, among others) is not
		// part of the first column's name.
		columns[i] = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
	}

	ds := New(name, columns)
	for _, record := range records[1:] {
		if isBlankRecord(record) {
			continue
		}
		row := make(Row, len(columns))
		for i, col := range columns {
			if i < len(record) {
				row[col] = Text(record[i])
			} else {
				row[col] = Absent()
			}
		}
		ds.Append(row)
	}
	return ds
}

func isBlankRecord(record []string) bool {
	for _, cell := range record {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

// Registry is an explicit mapping of dataset name to loaded dataset,
// replacing any shared mutable namespace between consumers.
type Registry struct {
	mu       sync.Mutex
	datasets map[string]*Dataset
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{datasets: make(map[string]*Dataset)}
}

// Put stores a dataset under its name.
func (r *Registry) Put(ds *Dataset) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.datasets[ds.Name] = ds
}

// Get returns the dataset stored under name, or nil and false.
func (r *Registry) Get(name string) (*Dataset, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	ds, ok := r.datasets[name]
	return ds, ok
}

// Names returns the names of all stored datasets.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.datasets))
	for name := range r.datasets {
		names = append(names, name)
	}
	return names
}

// LoadAll populates a registry from dir. The required dataset missing or
// unreadable is fatal and surfaces as MissingRequiredDatasetError; each
// optional dataset failure is logged as a warning and replaced with an
// empty dataset so downstream consumers see a uniform registry. Optional
// datasets load concurrently; only the registry write is shared state.
func LoadAll(logger *slog.Logger, dir, required string, optional ...string) (*Registry, error) {
	if logger == nil {
		logger = slog.Default()
	}

	reg := NewRegistry()

	ds, err := Load(required, dir)
	if err != nil {
		return nil, apperrors.NewMissingRequiredDataset(required, dir, err)
	}
	logger.Info("loaded required dataset",
		slog.String("dataset", required),
		slog.Int("rows", ds.Len()),
		slog.Int("columns", len(ds.Columns)))
	reg.Put(ds)

	var g errgroup.Group
	for _, name := range optional {
		name := name
		g.Go(func() error {
			ds, err := Load(name, dir)
			if err != nil {
				logger.Warn("optional dataset unavailable, substituting empty dataset",
					slog.String("dataset", name),
					slog.String("error", err.Error()))
				reg.Put(New(name, nil))
				return nil
			}
			logger.Info("loaded optional dataset",
				slog.String("dataset", name),
				slog.Int("rows", ds.Len()))
			reg.Put(ds)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return reg, nil
}
