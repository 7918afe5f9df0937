package chatlog

import (
	"errors"
	"fmt"
)

// Fatal parse errors. Callers match with errors.Is; the upload/CLI layer is
// responsible for turning these into a user-facing failure message.
var (
	// ErrUnrecognizedFormat means no known header pattern was found within the
	// scan window and the input is not a pre-normalized table either.
	ErrUnrecognizedFormat = errors.New("unrecognized chat export format")

	// ErrAmbiguousDateFormat means both the default and the day/month-swapped
	// readings of the date produced invalid calendar values.
	ErrAmbiguousDateFormat = errors.New("ambiguous date format")

	// ErrInvalidEncoding means the raw bytes are not valid UTF-8.
	ErrInvalidEncoding = errors.New("file is not valid UTF-8")
)

// dateRangeError reports a numeric date component outside its valid calendar
// range (e.g. a month of 14). It triggers the single day/month swap retry.
type dateRangeError struct {
	field string
	value int
}

func (e *dateRangeError) Error() string {
	return fmt.Sprintf("%s %d out of calendar range", e.field, e.value)
}
