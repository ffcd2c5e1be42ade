// Package cleaning implements the data-quality pipeline for the housing
// transactions dataset: missing-value normalization, numeric coercion,
// invalid-value sanitization, total reconciliation, and row filtering.
//
// Stages run strictly in that order and are total functions over their
// input once the schema is validated: row-level data problems become the
// Absent marker, never errors. Only the row filter changes the row count.
package cleaning
