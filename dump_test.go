package cec

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/Azhovan/cec/value"
)

func sampleConfig() value.Mapping {
	return value.Mapping{
		"a":    value.Sequence{value.Int(3), value.Int(4)},
		"cli":  value.String("yes"),
		"demo": value.Mapping{"config": value.Mapping{"key": value.String("value")}},
		"none": value.Null{},
	}
}

func TestDump_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, sampleConfig())
	require.NoError(t, err)

	expected := strings.Join([]string{
		`a: [3,4]`,
		`cli: "yes"`,
		`demo.config.key: "value"`,
		`none: null`,
	}, "\n") + "\n"
	assert.Equal(t, expected, buf.String())
}

func TestDump_TextWithSources(t *testing.T) {
	prov := &Provenance{Keys: []KeyProvenance{
		{Key: "a", SourceName: "cli"},
		{Key: "demo", SourceName: "env:nemo"},
	}}

	var buf bytes.Buffer
	err := Dump(&buf, sampleConfig(), WithSources(prov))
	require.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "a: [3,4] (source: cli)\n")
	assert.Contains(t, output, `demo.config.key: "value" (source: env:nemo)`+"\n")
	assert.Contains(t, output, `cli: "yes"`+"\n")
}

func TestDump_TextEmptyNestedMapping(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, value.Mapping{"empty": value.Mapping{}})
	require.NoError(t, err)

	assert.Equal(t, "empty: {}\n", buf.String())
}

func TestDump_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, sampleConfig(), AsJSON())
	require.NoError(t, err)

	assert.JSONEq(t, `{"a": [3, 4], "cli": "yes", "demo": {"config": {"key": "value"}}, "none": null}`, buf.String())
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "\n  \"a\"")
}

func TestDump_JSONCompact(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, value.Mapping{"a": value.Int(1)}, AsJSON(), WithIndent(""))
	require.NoError(t, err)

	assert.Equal(t, "{\"a\":1}\n", buf.String())
}

func TestDump_YAMLFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, sampleConfig(), AsYAML())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []any{3, 4}, decoded["a"])
	assert.Equal(t, "yes", decoded["cli"])
	assert.Equal(t, map[string]any{"config": map[string]any{"key": "value"}}, decoded["demo"])
	assert.Contains(t, decoded, "none")
	assert.Nil(t, decoded["none"])
}

func TestDump_TOMLFormat(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, sampleConfig(), AsTOML())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(buf.Bytes(), &decoded))

	assert.Equal(t, []any{int64(3), int64(4)}, decoded["a"])
	assert.Equal(t, "yes", decoded["cli"])
	assert.Equal(t, map[string]any{"config": map[string]any{"key": "value"}}, decoded["demo"])
	assert.NotContains(t, decoded, "none")
}

func TestDump_BigInteger(t *testing.T) {
	cfg := value.Mapping{"id": value.BigInt("18446744073709551615")}

	var text bytes.Buffer
	require.NoError(t, Dump(&text, cfg))
	assert.Equal(t, "id: 18446744073709551615\n", text.String())

	var js bytes.Buffer
	require.NoError(t, Dump(&js, cfg, AsJSON()))
	assert.Equal(t, `{"id":18446744073709551615}`+"\n", js.String())

	var ym bytes.Buffer
	require.NoError(t, Dump(&ym, cfg, AsYAML()))
	assert.Equal(t, "id: 18446744073709551615\n", ym.String())

	var tm bytes.Buffer
	require.NoError(t, Dump(&tm, cfg, AsTOML()))
	var decoded map[string]any
	require.NoError(t, toml.Unmarshal(tm.Bytes(), &decoded))
	assert.Equal(t, "18446744073709551615", decoded["id"])
}

func TestDump_NilConfig(t *testing.T) {
	var buf bytes.Buffer
	err := Dump(&buf, nil)
	assert.Error(t, err)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestDump_WriteError(t *testing.T) {
	for _, opt := range []DumpOption{AsJSON(), AsYAML(), AsTOML(), WithIndent("  ")} {
		err := Dump(failingWriter{}, value.Mapping{"a": value.Int(1)}, opt)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "write error")
	}
}

func TestParseFormat(t *testing.T) {
	cfg := value.Mapping{"a": value.Int(1)}

	tests := []struct {
		name     string
		check    func(t *testing.T, out string)
		format   string
		hasError bool
	}{
		{name: "text", format: "text", check: func(t *testing.T, out string) { assert.Equal(t, "a: 1\n", out) }},
		{name: "default", format: "", check: func(t *testing.T, out string) { assert.Equal(t, "a: 1\n", out) }},
		{name: "json", format: "json", check: func(t *testing.T, out string) {
			var decoded map[string]any
			require.NoError(t, json.Unmarshal([]byte(out), &decoded))
		}},
		{name: "yaml", format: "yaml", check: func(t *testing.T, out string) { assert.Equal(t, "a: 1\n", out) }},
		{name: "yml", format: "yml", check: func(t *testing.T, out string) { assert.Equal(t, "a: 1\n", out) }},
		{name: "toml", format: "toml", check: func(t *testing.T, out string) { assert.Equal(t, "a = 1\n", out) }},
		{name: "unknown", format: "ini", hasError: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opt, err := ParseFormat(tt.format)
			if tt.hasError {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)

			var buf bytes.Buffer
			require.NoError(t, Dump(&buf, cfg, opt))
			tt.check(t, buf.String())
		})
	}
}
