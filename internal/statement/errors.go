package statement

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyFile is returned when the input has no non-blank lines.
	ErrEmptyFile = errors.New("empty file")
	// ErrMissingColumns is returned when the header has no date or no description column.
	ErrMissingColumns = errors.New("missing required columns (date, description)")
)

// FormatError rejects a whole statement. Row-level problems never produce one.
type FormatError struct {
	Err    error
	Header []string // lower-cased header fields, nil for an empty file
}

func (e *FormatError) Error() string {
	if len(e.Header) > 0 {
		return fmt.Sprintf("invalid statement format: %s (header: %q)", e.Err, e.Header)
	}
	return fmt.Sprintf("invalid statement format: %s", e.Err)
}

func (e *FormatError) Unwrap() error { return e.Err }
