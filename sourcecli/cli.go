package sourcecli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Azhovan/cec/internal/normalize"
	"github.com/Azhovan/cec/value"
)

// ErrMalformedArgument is returned for an argument without "=".
var ErrMalformedArgument = errors.New("cec: malformed command-line argument")

// ArgumentError identifies the argument that could not be parsed.
type ArgumentError struct {
	Index int    // Position in the argument list, program name excluded
	Arg   string // The offending argument
}

func (e *ArgumentError) Error() string {
	return fmt.Sprintf("argument %d %q: expected --key=value", e.Index, e.Arg)
}

// Unwrap makes errors.Is(err, ErrMalformedArgument) hold.
func (e *ArgumentError) Unwrap() error {
	return ErrMalformedArgument
}

// MalformedPolicy decides what happens to an argument without "=".
type MalformedPolicy int

const (
	// MalformedFail aborts Load with an *ArgumentError.
	MalformedFail MalformedPolicy = iota
	// MalformedWarn logs the argument at warning level and skips it.
	MalformedWarn
	// MalformedSkip drops the argument silently.
	MalformedSkip
)

// ParseMalformedPolicy maps "fail", "warn" and "skip" to a policy.
func ParseMalformedPolicy(s string) (MalformedPolicy, error) {
	switch strings.ToLower(s) {
	case "", "fail":
		return MalformedFail, nil
	case "warn":
		return MalformedWarn, nil
	case "skip":
		return MalformedSkip, nil
	default:
		return MalformedFail, fmt.Errorf("unknown malformed argument policy %q (supported: fail, warn, skip)", s)
	}
}

// Options configures command-line source behavior.
type Options struct {
	// Args are the arguments without the program name. Nil uses os.Args[1:].
	Args []string

	// KeepInteger keeps integer values as integers. When false they become strings.
	KeepInteger bool

	// OnMalformed controls arguments without "=". Default: MalformedFail.
	OnMalformed MalformedPolicy

	// Logger receives MalformedWarn diagnostics. Nil uses the zerolog global logger.
	Logger *zerolog.Logger
}

// Source reads --key=value arguments.
type Source struct {
	opts Options
}

// New creates a command-line source.
func New(opts Options) *Source {
	return &Source{opts: opts}
}

// Load parses every argument. A key seen once maps to its value; a key seen
// several times maps to a Sequence of its values in order of appearance.
func (c *Source) Load(ctx context.Context) (value.Mapping, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	args := c.opts.Args
	if args == nil && len(os.Args) > 1 {
		args = os.Args[1:]
	}

	var order []string
	collected := make(map[string]value.Sequence)

	for i, arg := range args {
		flag, raw, ok := strings.Cut(arg, "=")
		if !ok {
			if err := c.malformed(i, arg); err != nil {
				return nil, err
			}
			continue
		}

		key := normalize.StripDashes(flag)
		if _, seen := collected[key]; !seen {
			order = append(order, key)
		}
		collected[key] = append(collected[key], value.Coerce(raw, c.opts.KeepInteger))
	}

	result := make(value.Mapping, len(order))
	for _, key := range order {
		values := collected[key]
		if len(values) == 1 {
			result[key] = values[0]
			continue
		}
		result[key] = values
	}

	return result, nil
}

func (c *Source) malformed(index int, arg string) error {
	err := &ArgumentError{Index: index, Arg: arg}

	switch c.opts.OnMalformed {
	case MalformedWarn:
		logger := c.opts.Logger
		if logger == nil {
			logger = &log.Logger
		}
		logger.Warn().Err(err).Int("index", index).Msg("skipping command-line argument")
		return nil
	case MalformedSkip:
		return nil
	default:
		return err
	}
}

// Name returns a human-readable identifier for this source.
func (c *Source) Name() string {
	return "cli"
}
