package cleaning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

func TestCoerceNumeric(t *testing.T) {
	tests := []struct {
		name string
		cell dataset.Value
		want dataset.Value
	}{
		{name: "integer text", cell: dataset.Text("42"), want: dataset.Number(42)},
		{name: "decimal text", cell: dataset.Text("3.5"), want: dataset.Number(3.5)},
		{name: "negative text", cell: dataset.Text("-1.25"), want: dataset.Number(-1.25)},
		{name: "padded number", cell: dataset.Text(" 7 "), want: dataset.Number(7)},
		{name: "already numeric", cell: dataset.Number(9), want: dataset.Number(9)},
		{name: "absent stays absent", cell: dataset.Absent(), want: dataset.Absent()},
		{name: "unparseable text", cell: dataset.Text("twelve"), want: dataset.Absent()},
		{name: "category", cell: dataset.Category("Cash"), want: dataset.Absent()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ds := dataset.New("t", []string{"A"})
			ds.Append(dataset.Row{"A": tt.cell})

			require.NoError(t, CoerceNumeric(ds, []string{"A"}))
			assert.Equal(t, tt.want, ds.Cell(0, "A"))
		})
	}
}

func TestCoerceNumericMissingColumn(t *testing.T) {
	ds := dataset.New("Housing", []string{"Item"})
	ds.Append(dataset.Row{"Item": dataset.Text("Chair")})

	err := CoerceNumeric(ds, []string{"Item", "Quantity"})
	require.Error(t, err)
	assert.True(t, apperrors.IsSchema(err))

	// Validation happens before any cell is touched.
	assert.Equal(t, dataset.Text("Chair"), ds.Cell(0, "Item"))
}
