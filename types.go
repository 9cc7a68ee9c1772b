package cec

import (
	"context"

	"github.com/Azhovan/cec/value"
)

// Source provides configuration data from one backend (file, env vars, command line).
// *sourcefile.Source, *sourceenv.Source and *sourcecli.Source implement it.
type Source interface {
	// Load returns the source's configuration. Missing optional data should return an empty Mapping.
	Load(ctx context.Context) (value.Mapping, error)

	// Name identifies the source in provenance and errors (e.g., "file:config.json").
	Name() string
}

// SourceFunc adapts a function to the Source interface.
type SourceFunc struct {
	SourceName string
	LoadFunc   func(ctx context.Context) (value.Mapping, error)
}

// Load calls LoadFunc.
func (f SourceFunc) Load(ctx context.Context) (value.Mapping, error) {
	return f.LoadFunc(ctx)
}

// Name returns SourceName.
func (f SourceFunc) Name() string {
	return f.SourceName
}
