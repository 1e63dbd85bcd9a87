package hooks

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedVariable indicates a configured hooks path references an
	// environment variable that is not set.
	ErrUndefinedVariable = errors.New("undefined environment variable")

	// ErrMalformedPath indicates invalid ${...} syntax in a configured hooks path.
	ErrMalformedPath = errors.New("malformed variable reference")
)

// PathExpansionError reports a core.hooksPath value that could not be
// expanded (home directory or environment variables).
type PathExpansionError struct {
	Path string
	Err  error
}

// Error implements the error interface.
func (e *PathExpansionError) Error() string {
	return fmt.Sprintf("expanding hooks path %q: %v", e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *PathExpansionError) Unwrap() error {
	return e.Err
}

// IOError reports a filesystem or process failure while running a hook:
// creating or reading the message file, or spawning the hook process.
type IOError struct {
	Op   string
	Path string
	Err  error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

// Unwrap returns the underlying cause for errors.Is/errors.As support.
func (e *IOError) Unwrap() error {
	return e.Err
}
