package cec

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/Azhovan/cec/value"
)

// DumpOption configures dump behavior using the functional options pattern.
type DumpOption func(*dumpConfig)

type dumpFormat int

const (
	formatText dumpFormat = iota
	formatJSON
	formatYAML
	formatTOML
)

// dumpConfig holds options for Dump.
type dumpConfig struct {
	format     dumpFormat
	provenance *Provenance // Source attribution for text output
	indent     string      // Indentation for JSON output (default: "  ")
}

// WithSources appends the winning source to each line of text output.
func WithSources(prov *Provenance) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.provenance = prov
	}
}

// AsJSON outputs configuration as JSON instead of text format.
func AsJSON() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatJSON
	}
}

// AsYAML outputs configuration as YAML.
func AsYAML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatYAML
	}
}

// AsTOML outputs configuration as TOML. TOML has no null, so null values are omitted.
func AsTOML() DumpOption {
	return func(cfg *dumpConfig) {
		cfg.format = formatTOML
	}
}

// WithIndent sets the indentation for JSON output.
// Default is two spaces ("  ").
func WithIndent(indent string) DumpOption {
	return func(cfg *dumpConfig) {
		cfg.indent = indent
	}
}

// ParseFormat maps "text", "json", "yaml"/"yml" and "toml" to a DumpOption.
func ParseFormat(name string) (DumpOption, error) {
	switch name {
	case "", "text":
		return func(cfg *dumpConfig) { cfg.format = formatText }, nil
	case "json":
		return AsJSON(), nil
	case "yaml", "yml":
		return AsYAML(), nil
	case "toml":
		return AsTOML(), nil
	default:
		return nil, fmt.Errorf("unsupported dump format: %s (supported: text, json, yaml, toml)", name)
	}
}

// Dump writes cfg to w. The default text format prints one
// "dotted.path: <json value>" line per leaf in sorted order.
func Dump(w io.Writer, cfg value.Mapping, opts ...DumpOption) error {
	if cfg == nil {
		return fmt.Errorf("config is nil")
	}

	config := dumpConfig{
		indent: "  ",
	}
	for _, opt := range opts {
		opt(&config)
	}

	switch config.format {
	case formatJSON:
		return dumpAsJSON(w, cfg, config)
	case formatYAML:
		return dumpAsYAML(w, cfg)
	case formatTOML:
		return dumpAsTOML(w, cfg)
	default:
		return dumpAsText(w, cfg, config)
	}
}

// dumpAsText outputs configuration in text format (key: value).
func dumpAsText(w io.Writer, cfg value.Mapping, config dumpConfig) error {
	for _, key := range cfg.Keys() {
		source, _ := config.provenance.SourceOf(key)

		var lines []string
		if err := collectLines(key, cfg[key], &lines); err != nil {
			return err
		}

		for _, line := range lines {
			if source != "" {
				line += fmt.Sprintf(" (source: %s)", source)
			}
			if _, err := io.WriteString(w, line+"\n"); err != nil {
				return fmt.Errorf("write error: %w", err)
			}
		}
	}
	return nil
}

// collectLines flattens nested mappings into dotted paths. Sequences and
// empty mappings are printed whole.
func collectLines(path string, v value.Value, lines *[]string) error {
	if m, ok := v.(value.Mapping); ok && len(m) > 0 {
		for _, key := range m.Keys() {
			if err := collectLines(path+"."+key, m[key], lines); err != nil {
				return err
			}
		}
		return nil
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}
	*lines = append(*lines, fmt.Sprintf("%s: %s", path, data))
	return nil
}

// dumpAsJSON outputs configuration as JSON.
func dumpAsJSON(w io.Writer, cfg value.Mapping, config dumpConfig) error {
	var data []byte
	var err error
	if config.indent != "" {
		data, err = json.MarshalIndent(cfg, "", config.indent)
	} else {
		data, err = json.Marshal(cfg)
	}

	if err != nil {
		return fmt.Errorf("json marshal error: %w", err)
	}

	return writeWithNewline(w, data)
}

func dumpAsYAML(w io.Writer, cfg value.Mapping) error {
	data, err := yaml.Marshal(yamlNumbers(value.ToNative(cfg)))
	if err != nil {
		return fmt.Errorf("yaml marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

// yamlNumbers emits integers beyond int64 as plain YAML ints instead of
// quoted strings.
func yamlNumbers(v any) any {
	switch t := v.(type) {
	case json.Number:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!int", Value: string(t)}
	case map[string]any:
		for k, item := range t {
			t[k] = yamlNumbers(item)
		}
		return t
	case []any:
		for i, item := range t {
			t[i] = yamlNumbers(item)
		}
		return t
	default:
		return v
	}
}

// dumpAsTOML writes integers beyond int64 as strings, since TOML integers are
// 64-bit.
func dumpAsTOML(w io.Writer, cfg value.Mapping) error {
	data, err := toml.Marshal(dropNulls(value.ToNative(cfg)))
	if err != nil {
		return fmt.Errorf("toml marshal error: %w", err)
	}

	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}

func dropNulls(v any) any {
	switch t := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(t))
		for k, item := range t {
			if item == nil {
				continue
			}
			out[k] = dropNulls(item)
		}
		return out
	case []any:
		out := make([]any, 0, len(t))
		for _, item := range t {
			if item == nil {
				continue
			}
			out = append(out, dropNulls(item))
		}
		return out
	default:
		return v
	}
}

func writeWithNewline(w io.Writer, data []byte) error {
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write error: %w", err)
	}

	// Add newline for better formatting
	if _, err := w.Write([]byte("\n")); err != nil {
		return fmt.Errorf("write error: %w", err)
	}
	return nil
}
