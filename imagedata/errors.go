package imagedata

import (
	"errors"
	"fmt"
)

var (
	ErrFileNotFound    = errors.New("file not found")
	ErrMalformedHeader = errors.New("malformed header")
	ErrMalformedRecord = errors.New("malformed record")
)

// ParseError locates a parse failure in the input. Err is one of the package sentinels.
type ParseError struct {
	Err    error
	File   string
	Line   int
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: %s - %s", e.File, e.Line, e.Err, e.Reason)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
