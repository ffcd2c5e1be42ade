package cleaning

import (
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// ClampNegative replaces strictly negative numeric values in the named
// columns with Absent. No other range check is applied; zero is a valid
// value. Runs after coercion so every cell is either numeric or Absent.
// Returns the number of cells clamped.
func ClampNegative(ds *dataset.Dataset, columns []string) int {
	clamped := 0
	for _, row := range ds.Rows {
		for _, col := range columns {
			if f, ok := row[col].Number(); ok && f < 0 {
				row[col] = dataset.Absent()
				clamped++
			}
		}
	}
	return clamped
}
