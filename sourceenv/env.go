package sourceenv

import (
	"context"
	"os"
	"strings"

	"github.com/Azhovan/cec/internal/normalize"
	"github.com/Azhovan/cec/value"
)

// Options configures environment variable source behavior.
type Options struct {
	// Prefix selects variables named <prefix><delimiter>... (case-insensitive).
	// An empty prefix selects variables starting with the delimiter.
	Prefix string

	// Delimiter follows the prefix; doubled, it separates nested levels. Default: "_".
	Delimiter string

	// KeepInteger keeps integer values as integers. When false they become strings.
	KeepInteger bool

	// Environ returns KEY=value entries. Default: os.Environ.
	Environ func() []string
}

// Source reads prefixed environment variables into a nested Mapping.
type Source struct {
	opts Options
}

// New creates an environment variable source.
func New(opts Options) *Source {
	if opts.Delimiter == "" {
		opts.Delimiter = normalize.DefaultDelimiter
	}
	if opts.Environ == nil {
		opts.Environ = os.Environ
	}
	return &Source{opts: opts}
}

// Load scans environment variables, filters by prefix, splits keys into
// paths and coerces values. A bare "<prefix>_" variable is stored under the
// empty key.
func (e *Source) Load(ctx context.Context) (value.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	result := make(value.Mapping)

	for _, env := range e.opts.Environ() {
		name, raw, ok := strings.Cut(env, "=")
		if !ok || name == "" {
			continue
		}

		key, matched := normalize.MatchPrefix(name, e.opts.Prefix, e.opts.Delimiter)
		if !matched {
			continue
		}

		// nemo_demo__config → demo.config
		path := normalize.SplitPath(key, e.opts.Delimiter)
		normalize.Assign(result, path, value.Coerce(raw, e.opts.KeepInteger))
	}

	return result, nil
}

// Name returns a human-readable identifier for this source.
func (e *Source) Name() string {
	return "env:" + strings.ToLower(e.opts.Prefix)
}
