package loader

import (
	"errors"
	"fmt"
)

var (
	// ErrFileNotFound is returned when neither the given path nor the path
	// with a ".txt" suffix can be opened.
	ErrFileNotFound = errors.New("input file not found")

	// ErrMissingCount is returned when the input holds no tokens at all.
	ErrMissingCount = errors.New("missing point count")

	// ErrIncompletePair is returned when the input ends after an x
	// coordinate with no matching y.
	ErrIncompletePair = errors.New("incomplete coordinate pair")
)

// ParseError reports a token that could not be read as an integer of the
// expected width, or input that ended in the middle of a record.
type ParseError struct {
	Token string // offending token; empty when the input ended early
	Index int    // 1-based token position
	Err   error
}

func (e *ParseError) Error() string {
	if e.Token == "" {
		return fmt.Sprintf("parse error at token %d: %v", e.Index, e.Err)
	}
	return fmt.Sprintf("parse error at token %d (%q): %v", e.Index, e.Token, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
