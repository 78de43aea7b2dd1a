package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingField is returned when a line has no tab-separated second field.
	ErrMissingField = errors.New("missing tab-separated second field")
	// ErrNotNumeric is returned when a field is not a finite decimal number.
	ErrNotNumeric = errors.New("field is not numeric")
	// ErrLengthMismatch is returned when x and y columns differ in length.
	ErrLengthMismatch = errors.New("x and y columns differ in length")
)

// ParseError reports the line a dataset failed to parse at.
type ParseError struct {
	// Line is the 1-based line number.
	Line int
	// Field is the 0-based column index, or -1 when the line as a whole is malformed.
	Field int
	// Text is the offending field, or the whole line when Field is -1.
	Text string
	// Err is ErrMissingField or ErrNotNumeric.
	Err error
}

func (e *ParseError) Error() string {
	if e.Field < 0 {
		return fmt.Sprintf("line %d: %v: %q", e.Line, e.Err, e.Text)
	}

	return fmt.Sprintf("line %d, field %d: %v: %q", e.Line, e.Field, e.Err, e.Text)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
