package types

import (
	"errors"
	"fmt"
)

// Catalog and library errors.
var (
	ErrNotFound    = errors.New("book not found")
	ErrInvalidBook = errors.New("invalid book")
	ErrClosed      = errors.New("library is closed")
)

// Storage errors.
var (
	ErrMalformedRecord = errors.New("malformed record")
	ErrUnencodable     = errors.New("field cannot be encoded in this format")
)

// MalformedRecordError reports the storage line that failed to parse.
type MalformedRecordError struct {
	Path   string
	Line   int
	Reason string
}

// Error implements the error interface.
func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("%s:%d: %s", e.Path, e.Line, e.Reason)
}

// Is implements errors.Is support.
func (e *MalformedRecordError) Is(target error) bool {
	return target == ErrMalformedRecord
}
