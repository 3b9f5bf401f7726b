// internal/errors/errors.go
package errors

import (
	stderrors "errors"
	"fmt"
)

// ErrorType classifies a pipeline failure.
type ErrorType string

const (
	ErrTypeIO     ErrorType = "IO"
	ErrTypeSchema ErrorType = "SCHEMA"
	ErrTypeData   ErrorType = "DATA"
)

// PipelineError is an IO or schema failure tagged with the stage that raised
// it. Both kinds abort the whole run: every later stage assumes a complete,
// well-typed record set.
type PipelineError struct {
	Type    ErrorType
	Stage   string
	Message string
	Cause   error
}

func (e *PipelineError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.Type, e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Type, e.Stage, e.Message)
}

func (e *PipelineError) Unwrap() error {
	return e.Cause
}

// NewIOError reports an unreadable or unwritable input, store or output.
func NewIOError(stage, message string, cause error) *PipelineError {
	return &PipelineError{Type: ErrTypeIO, Stage: stage, Message: message, Cause: cause}
}

// NewSchemaError reports a missing or malformed required column at ingestion.
func NewSchemaError(stage, message string, cause error) *PipelineError {
	return &PipelineError{Type: ErrTypeSchema, Stage: stage, Message: message, Cause: cause}
}

// DataError reports a non-numeric value found in a numeric column during
// aggregation. It aborts the aggregation it occurred in, but classification
// results computed over the same record set stay valid.
type DataError struct {
	Restaurant string
	Column     string
	Value      string
	Cause      error
}

func (e *DataError) Error() string {
	return fmt.Sprintf("[%s] aggregation: restaurant %q: column %q holds non-numeric value %q",
		ErrTypeData, e.Restaurant, e.Column, e.Value)
}

func (e *DataError) Unwrap() error {
	return e.Cause
}

// NewDataError creates a DataError for the given restaurant, column and raw value.
func NewDataError(restaurant, column, value string, cause error) *DataError {
	return &DataError{Restaurant: restaurant, Column: column, Value: value, Cause: cause}
}

// TypeOf walks the error chain and returns the pipeline error type, or ""
// when the error carries none.
func TypeOf(err error) ErrorType {
	var de *DataError
	if stderrors.As(err, &de) {
		return ErrTypeData
	}
	var pe *PipelineError
	if stderrors.As(err, &pe) {
		return pe.Type
	}
	return ""
}

// IsType reports whether err carries the given pipeline error type.
func IsType(err error, t ErrorType) bool {
	return TypeOf(err) == t
}
