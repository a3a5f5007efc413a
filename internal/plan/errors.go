package plan

import (
	"errors"
	"fmt"
)

var (
	ErrNotFound    = errors.New("plan file not found")
	ErrOpen        = errors.New("cannot open plan file")
	ErrEmptyFile   = errors.New("plan file is empty")
	ErrSyntax      = errors.New("YAML parse error")
	ErrInvalidRoot = errors.New("invalid YAML root document")

	ErrEmptyScalar      = errors.New("empty numeric value")
	ErrUnparsableNumber = errors.New("cannot convert value to a number")
	ErrNotASequence     = errors.New("range must be a YAML sequence of two numbers")
	ErrWrongArity       = errors.New("range must contain exactly two numbers")
)

// InstrumentError annotates a schema failure with the ticker that caused it.
type InstrumentError struct {
	Ticker string
	Err    error
}

func (e *InstrumentError) Error() string {
	return fmt.Sprintf("%s: %v", e.Ticker, e.Err)
}

func (e *InstrumentError) Unwrap() error {
	return e.Err
}

// fieldError prefixes err with the name of the field it came from.
func fieldError(field string, err error) error {
	return fmt.Errorf("%s: %w", field, err)
}

func missingField(field string) error {
	return fmt.Errorf("missing required field %q", field)
}
