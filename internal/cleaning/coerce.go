package cleaning

import (
	"strconv"
	"strings"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

// CoerceNumeric converts every cell of the named columns to a number.
// Text parses as a decimal; numbers pass through; anything unparseable,
// including the Absent marker, becomes Absent. Each named column must
// exist in the dataset or the whole call fails with a SchemaError before
// any cell is touched. Arithmetic and comparisons downstream rely on this
// stage having run on every declared numeric column.
func CoerceNumeric(ds *dataset.Dataset, columns []string) error {
	for _, col := range columns {
		if !ds.HasColumn(col) {
			return apperrors.NewSchema(ds.Name, col)
		}
	}

	for _, row := range ds.Rows {
		for _, col := range columns {
			row[col] = coerceCell(row[col])
		}
	}
	return nil
}

func coerceCell(v dataset.Value) dataset.Value {
	if _, ok := v.Number(); ok {
		return v
	}
	s, ok := v.Text()
	if !ok {
		return dataset.Absent()
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return dataset.Absent()
	}
	return dataset.Number(f)
}
