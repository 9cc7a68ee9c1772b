package cec

import (
	"context"
	"sort"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Azhovan/cec/sourcecli"
	"github.com/Azhovan/cec/sourceenv"
	"github.com/Azhovan/cec/sourcefile"
	"github.com/Azhovan/cec/value"
)

// Defaults used by ResolveDefault.
const (
	DefaultFilePath  = "config.json"
	DefaultEnvPrefix = "nemo"
)

// Resolver merges configuration from multiple sources.
// Sources are processed in order; a later source replaces whole top-level keys of earlier ones.
// A Resolver may be reused; every call builds a fresh result.
type Resolver struct {
	sources []Source
	logger  zerolog.Logger
}

// New creates a Resolver with no sources that logs through the zerolog global logger.
func New() *Resolver {
	return &Resolver{
		sources: make([]Source, 0),
		logger:  log.Logger,
	}
}

// WithSource adds a source. Sources are processed in order (later override earlier).
func (r *Resolver) WithSource(src Source) *Resolver {
	r.sources = append(r.sources, src)
	return r
}

// WithLogger sets the logger used for per-source diagnostics.
func (r *Resolver) WithLogger(logger zerolog.Logger) *Resolver {
	r.logger = logger
	return r
}

// Resolve loads every source and shallow-merges the results.
func (r *Resolver) Resolve(ctx context.Context) (value.Mapping, error) {
	cfg, _, err := r.ResolveWithProvenance(ctx)
	return cfg, err
}

// ResolveWithProvenance is Resolve plus the source of every top-level key.
func (r *Resolver) ResolveWithProvenance(ctx context.Context) (value.Mapping, *Provenance, error) {
	merged := make(value.Mapping)
	winners := make(map[string]*KeyProvenance)

	for _, source := range r.sources {
		data, err := source.Load(ctx)
		if err != nil {
			return nil, nil, &SourceError{Source: source.Name(), Err: err}
		}

		r.logger.Debug().
			Str("source", source.Name()).
			Int("keys", len(data)).
			Msg("source loaded")

		// Top-level replacement only; nested mappings are never merged across sources.
		// Values are copied so results never alias a source's own maps.
		for key, v := range data {
			merged[key] = value.CloneValue(v)

			kp, ok := winners[key]
			if !ok {
				winners[key] = &KeyProvenance{Key: key, SourceName: source.Name()}
				continue
			}
			kp.Overridden = append(kp.Overridden, kp.SourceName)
			kp.SourceName = source.Name()
		}
	}

	prov := &Provenance{Keys: make([]KeyProvenance, 0, len(winners))}
	for _, kp := range winners {
		prov.Keys = append(prov.Keys, *kp)
	}
	sort.Slice(prov.Keys, func(i, j int) bool {
		return prov.Keys[i].Key < prov.Keys[j].Key
	})

	return merged, prov, nil
}

// Options configures ResolveWith.
type Options struct {
	// FilePath is the JSON file to read first. Empty skips the file source.
	FilePath string

	// EnvPrefix selects <prefix>_* environment variables.
	EnvPrefix string

	// KeepInteger keeps integer values from env and cli as integers.
	KeepInteger bool

	// Environ overrides os.Environ.
	Environ func() []string

	// Args overrides os.Args[1:].
	Args []string

	// OnMalformed controls command-line arguments without "=". Default: fail.
	OnMalformed sourcecli.MalformedPolicy

	// Logger overrides the zerolog global logger.
	Logger *zerolog.Logger
}

// DefaultOptions returns the options used by ResolveDefault.
func DefaultOptions() Options {
	return Options{
		FilePath:    DefaultFilePath,
		EnvPrefix:   DefaultEnvPrefix,
		KeepInteger: true,
	}
}

// NewFromOptions builds a Resolver over file < env < cli for opts.
func NewFromOptions(opts Options) *Resolver {
	r := New()
	if opts.Logger != nil {
		r.WithLogger(*opts.Logger)
	}

	if opts.FilePath != "" {
		r.WithSource(sourcefile.New(opts.FilePath, sourcefile.Options{Logger: opts.Logger}))
	}

	return r.
		WithSource(sourceenv.New(sourceenv.Options{
			Prefix:      opts.EnvPrefix,
			KeepInteger: opts.KeepInteger,
			Environ:     opts.Environ,
		})).
		WithSource(sourcecli.New(sourcecli.Options{
			Args:        opts.Args,
			KeepInteger: opts.KeepInteger,
			OnMalformed: opts.OnMalformed,
			Logger:      opts.Logger,
		}))
}

// ResolveWith resolves file < env < cli configuration described by opts.
func ResolveWith(ctx context.Context, opts Options) (value.Mapping, error) {
	return NewFromOptions(opts).Resolve(ctx)
}

// Resolve merges the JSON file at filepath, envPrefix_* environment variables
// and the process's command-line arguments, in that priority order.
// An empty filepath skips the file.
func Resolve(ctx context.Context, filepath, envPrefix string, keepInteger bool) (value.Mapping, error) {
	return ResolveWith(ctx, Options{
		FilePath:    filepath,
		EnvPrefix:   envPrefix,
		KeepInteger: keepInteger,
	})
}

// ResolveDefault is Resolve("config.json", "nemo", true).
func ResolveDefault(ctx context.Context) (value.Mapping, error) {
	return ResolveWith(ctx, DefaultOptions())
}
