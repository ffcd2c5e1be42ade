package cleaning

import (
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// FilterPresent returns a new dataset containing exactly the rows whose
// cell in the named column is present, preserving row order. Row storage
// is shared with the input; the pipeline does not mutate rows after this
// stage.
func FilterPresent(ds *dataset.Dataset, column string) *dataset.Dataset {
	out := dataset.New(ds.Name, append([]string(nil), ds.Columns...))
	for _, row := range ds.Rows {
		if !row[column].IsAbsent() {
			out.Append(row)
		}
	}
	return out
}
