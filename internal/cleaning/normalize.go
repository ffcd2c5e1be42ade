package cleaning

import (
	"github.com/iSMASHMAN/housing-group8-project/internal/dataset"
)

// DefaultMissingTokens are the sentinel spellings treated as missing data.
// Matching is exact: no trimming or case folding beyond the variants
// listed here.
var DefaultMissingTokens = []string{"", "NA", "N/A", "na", "NaN", "nan", "null", "NULL", "-"}

// NormalizeMissing replaces every cell whose text equals one of the
// sentinel tokens with the Absent marker, across all columns. Cells that
// are already typed (numbers, Absent) and unmatched text pass through
// unchanged. Returns the number of cells normalized.
func NormalizeMissing(ds *dataset.Dataset, tokens []string) int {
	sentinel := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		sentinel[t] = struct{}{}
	}

	normalized := 0
	for _, row := range ds.Rows {
		for _, col := range ds.Columns {
			s, ok := row[col].Text()
			if !ok {
				continue
			}
			if _, hit := sentinel[s]; hit {
				row[col] = dataset.Absent()
				normalized++
			}
		}
	}
	return normalized
}
