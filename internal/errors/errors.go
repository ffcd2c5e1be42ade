// Package errors defines the error taxonomy shared by the cleaning
// pipeline and its collaborators. Every error carries a stable code so
// log output and tests can match on it without parsing messages.
package errors

import (
	"errors"
	"fmt"
)

// Error codes for the pipeline error taxonomy.
const (
	CodeMissingRequiredDataset = "MISSING_REQUIRED_DATASET"
	CodeSchema                 = "SCHEMA_ERROR"
	CodeEmptyInput             = "EMPTY_INPUT"
)

// ErrDatasetNotFound is the loader's "not found" signal. Callers decide
// whether a missing dataset is fatal (the required dataset) or tolerable
// (optional datasets substituted with an empty dataset).
var ErrDatasetNotFound = errors.New("dataset not found")

// MissingRequiredDatasetError indicates the required input dataset could
// not be loaded. This aborts the whole run.
type MissingRequiredDatasetError struct {
	Name string
	Dir  string
	Err  error
}

func (e *MissingRequiredDatasetError) Error() string {
	return fmt.Sprintf("required dataset %q not found in %s", e.Name, e.Dir)
}

func (e *MissingRequiredDatasetError) Unwrap() error { return e.Err }

// Code returns the stable error code for log matching.
func (e *MissingRequiredDatasetError) Code() string { return CodeMissingRequiredDataset }

// SchemaError indicates a column the pipeline depends on is absent from a
// dataset. Fatal for that dataset's run; data-quality problems inside
// existing columns never raise it.
type SchemaError struct {
	Dataset string
	Column  string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("dataset %q: required column %q not present", e.Dataset, e.Column)
}

func (e *SchemaError) Code() string { return CodeSchema }

// EmptyInputError indicates a statistic or aggregate was requested over
// zero eligible rows. Surfaced to the caller, never silently defaulted to
// zero or NaN.
type EmptyInputError struct {
	Operation string
}

func (e *EmptyInputError) Error() string {
	return fmt.Sprintf("%s: no eligible values in input", e.Operation)
}

func (e *EmptyInputError) Code() string { return CodeEmptyInput }

// NewMissingRequiredDataset wraps a load failure for the required dataset.
func NewMissingRequiredDataset(name, dir string, err error) *MissingRequiredDatasetError {
	return &MissingRequiredDatasetError{Name: name, Dir: dir, Err: err}
}

// NewSchema reports a missing column in the named dataset.
func NewSchema(dataset, column string) *SchemaError {
	return &SchemaError{Dataset: dataset, Column: column}
}

// NewEmptyInput reports an operation that received zero eligible values.
func NewEmptyInput(operation string) *EmptyInputError {
	return &EmptyInputError{Operation: operation}
}

// IsSchema reports whether err is (or wraps) a SchemaError.
func IsSchema(err error) bool {
	var se *SchemaError
	return errors.As(err, &se)
}

// IsEmptyInput reports whether err is (or wraps) an EmptyInputError.
func IsEmptyInput(err error) bool {
	var ee *EmptyInputError
	return errors.As(err, &ee)
}
