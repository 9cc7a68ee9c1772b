package sourcefile

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Azhovan/cec/value"
)

// ErrNotObject is reported when the file holds valid JSON that is not an object.
var ErrNotObject = errors.New("top-level JSON value is not an object")

// Options configures file source behavior.
type Options struct {
	// Logger receives the warning for unreadable files. Nil uses the zerolog global logger.
	Logger *zerolog.Logger
}

// Source reads a JSON document from disk.
type Source struct {
	path string
	opts Options
}

// New creates a JSON file source.
func New(path string, opts Options) *Source {
	return &Source{
		path: path,
		opts: opts,
	}
}

// Load reads and parses the file. A missing, unreadable or malformed file
// yields an empty Mapping and a warning, never an error. Only a cancelled
// context is reported.
func (f *Source) Load(ctx context.Context) (value.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	m, err := f.read()
	if err != nil {
		logger := f.logger()
		logger.Warn().
			Err(err).
			Str("path", f.path).
			Msgf("Can't parse %s, maybe file not found or corrupted?", f.path)
		return value.Mapping{}, nil
	}
	return m, nil
}

func (f *Source) read() (value.Mapping, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("read config file %s: %w", f.path, err)
	}

	parsed, err := value.Parse(string(data))
	if err != nil {
		return nil, fmt.Errorf("parse JSON file %s: %w", f.path, err)
	}

	m, ok := parsed.(value.Mapping)
	if !ok {
		return nil, fmt.Errorf("parse JSON file %s: %w", f.path, ErrNotObject)
	}
	return m, nil
}

func (f *Source) logger() *zerolog.Logger {
	if f.opts.Logger != nil {
		return f.opts.Logger
	}
	return &log.Logger
}

// Name returns a human-readable identifier for this source.
func (f *Source) Name() string {
	return "file:" + filepath.Base(f.path)
}
