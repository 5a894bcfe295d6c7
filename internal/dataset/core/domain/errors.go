package domain

import (
	"errors"
	"fmt"
)

var (
	ErrDataLoad = errors.New("data load error")
	ErrSchema   = errors.New("schema error")
)

// DataLoadError is returned when a dataset source cannot produce a usable table.
// It is fatal at startup.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("load dataset %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error { return e.Err }

func (e *DataLoadError) Is(target error) bool { return target == ErrDataLoad }

// SchemaError is returned by a query that references a column the dataset
// does not have, or aggregates a non-numeric one. It only fails that query.
type SchemaError struct {
	Field  string
	Reason string
}

func (e *SchemaError) Error() string {
	if e.Field == "" {
		return "schema error: " + e.Reason
	}
	return fmt.Sprintf("schema error: field %q %s", e.Field, e.Reason)
}

func (e *SchemaError) Is(target error) bool { return target == ErrSchema }

func loadErr(source string, format string, args ...any) error {
	return &DataLoadError{Source: source, Err: fmt.Errorf(format, args...)}
}

func missingField(field string) error {
	return &SchemaError{Field: field, Reason: "is not present in the dataset"}
}

func nonNumericField(field string) error {
	return &SchemaError{Field: field, Reason: "is not numeric"}
}
