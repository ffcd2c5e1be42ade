package cleaning

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
	apperrors "github.com/iSMASHMAN/housing-group8-project/internal/errors"
)

func housingColumns() []string {
	return []string{
		dataset.ColItem,
		dataset.ColQuantity,
		dataset.ColPricePerUnit,
		dataset.ColTotalSpent,
		dataset.ColPaymentMethod,
	}
}

func rawRow(item, qty, price, total, pay string) dataset.Row {
	return dataset.Row{
		dataset.ColItem:          dataset.Text(item),
		dataset.ColQuantity:      dataset.Text(qty),
		dataset.ColPricePerUnit:  dataset.Text(price),
		dataset.ColTotalSpent:    dataset.Text(total),
		dataset.ColPaymentMethod: dataset.Text(pay),
	}
}

func TestPipelineEndToEnd(t *testing.T) {
	ds := dataset.New("Housing", housingColumns())
	ds.Append(rawRow("Chair", "2", "10", "999", "Cash")) // divergent total, corrected to 20
	ds.Append(rawRow("Chair", "3", "5", "NA", "Card"))   // missing total, filled with 15
	ds.Append(rawRow("Lamp", "-1", "5", "5", "Cash"))    // negative qty clamped, total 5 kept

	p := NewPipeline(slog.Default(), DefaultOptions())
	cleaned, err := p.Run(ds)
	require.NoError(t, err)

	require.Equal(t, 3, cleaned.Len(), "all three rows keep a present total")

	assert.Equal(t, dataset.Number(20), cleaned.Cell(0, dataset.ColTotalSpent))
	assert.Equal(t, dataset.Number(15), cleaned.Cell(1, dataset.ColTotalSpent))

	// Row 2: quantity went absent, so the recomputed product is absent and
	// the stored total of 5 survives untouched.
	assert.True(t, cleaned.Cell(2, dataset.ColQuantity).IsAbsent())
	assert.Equal(t, dataset.Number(5), cleaned.Cell(2, dataset.ColTotalSpent))

	sum := 0.0
	for _, f := range cleaned.Numbers(dataset.ColTotalSpent) {
		sum += f
	}
	assert.Equal(t, 40.0, sum)
}

func TestPipelineDropsRowsWithoutTotal(t *testing.T) {
	ds := dataset.New("Housing", housingColumns())
	ds.Append(rawRow("Chair", "2", "10", "20", "Cash"))
	ds.Append(rawRow("Lamp", "NA", "5", "null", "Card")) // absent qty and total: no way to reconcile

	p := NewPipeline(slog.Default(), DefaultOptions())
	cleaned, err := p.Run(ds)
	require.NoError(t, err)

	require.Equal(t, 1, cleaned.Len())
	v, _ := cleaned.Cell(0, dataset.ColItem).Text()
	assert.Equal(t, "Chair", v)
}

func TestPipelineIdempotent(t *testing.T) {
	ds := dataset.New("Housing", housingColumns())
	ds.Append(rawRow("Chair", "2", "10", "999", "Cash"))
	ds.Append(rawRow("Desk", "1", "40", "-", "Card"))
	ds.Append(rawRow("Lamp", "-3", "5", "8", "Cash"))

	p := NewPipeline(slog.Default(), DefaultOptions())

	once, err := p.Run(ds)
	require.NoError(t, err)
	firstTotals := once.Column(dataset.ColTotalSpent)

	twice, err := p.Run(once.Clone())
	require.NoError(t, err)

	require.Equal(t, once.Len(), twice.Len(), "second pass must not drop rows")
	assert.Equal(t, firstTotals, twice.Column(dataset.ColTotalSpent), "second pass must not change any total")
}

func TestPipelineSchemaFailureAborts(t *testing.T) {
	ds := dataset.New("Housing", []string{dataset.ColItem})
	ds.Append(dataset.Row{dataset.ColItem: dataset.Text("Chair")})

	p := NewPipeline(slog.Default(), DefaultOptions())
	_, err := p.Run(ds)
	require.Error(t, err)
	assert.True(t, apperrors.IsSchema(err))
}

func TestPipelinePreservesRowOrder(t *testing.T) {
	ds := dataset.New("Housing", housingColumns())
	items := []string{"A", "B", "C", "D"}
	for i, item := range items {
		if i == 2 {
			ds.Append(rawRow(item, "NA", "1", "NA", "Cash")) // dropped
			continue
		}
		ds.Append(rawRow(item, "1", "1", "1", "Cash"))
	}

	p := NewPipeline(slog.Default(), DefaultOptions())
	cleaned, err := p.Run(ds)
	require.NoError(t, err)

	var got []string
	for i := range cleaned.Rows {
		s, _ := cleaned.Cell(i, dataset.ColItem).Text()
		got = append(got, s)
	}
	assert.Equal(t, []string{"A", "B", "D"}, got)
}
