package cleaning

import (
	"math"

	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// DefaultTolerance bounds the allowed disagreement between a stored total
// and the recomputed Quantity*PricePerUnit before the stored value is
// overwritten.
const DefaultTolerance = 1e-6

// ReconcileStats counts the outcomes of one reconciliation pass.
type ReconcileStats struct {
	Filled    int // stored total was absent, recomputed value written
	Corrected int // stored total diverged beyond tolerance, overwritten
	Untouched int // stored total kept as-is
}

// ReconcileTotals recomputes quantity*price per row and overwrites the
// total column wherever the stored total is absent or disagrees with the
// recomputed value beyond tolerance.
//
// The recomputed product propagates Absent: if either operand is absent,
// so is the product. An absent product never overwrites a present stored
// total; that comparison is handled as an explicit branch rather than
// through floating-point NaN behavior. Rows already within tolerance are
// left untouched, which makes the pass idempotent.
func ReconcileTotals(ds *dataset.Dataset, quantityCol, priceCol, totalCol string, tolerance float64) ReconcileStats {
	var stats ReconcileStats

	for _, row := range ds.Rows {
		calculated := dataset.Mul(row[quantityCol], row[priceCol])
		stored := row[totalCol]

		storedF, storedOK := stored.Number()
		calcF, calcOK := calculated.Number()

		switch {
		case !storedOK && calcOK:
			row[totalCol] = calculated
			stats.Filled++
		case !storedOK && !calcOK:
			// Nothing to reconcile from; the row filter drops it.
			stats.Untouched++
		case storedOK && !calcOK:
			// A valid stored total is never replaced with Absent.
			stats.Untouched++
		case math.Abs(storedF-calcF) > tolerance:
			row[totalCol] = calculated
			stats.Corrected++
		default:
			stats.Untouched++
		}
	}
	return stats
}
