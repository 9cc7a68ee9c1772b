package cec

import (
	"fmt"

	"github.com/Azhovan/cec/sourcecli"
)

// ErrMalformedArgument is returned (wrapped) when a command-line argument has no "=".
var ErrMalformedArgument = sourcecli.ErrMalformedArgument

// SourceError reports a source whose Load failed.
type SourceError struct {
	Source string // Source name (e.g., "cli")
	Err    error
}

// Error formats the failing source and its cause.
func (e *SourceError) Error() string {
	return fmt.Sprintf("load source %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying error.
func (e *SourceError) Unwrap() error {
	return e.Err
}
