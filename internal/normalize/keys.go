package normalize

import (
	"strings"

	"github.com/Azhovan/cec/value"
)

// DefaultDelimiter separates the prefix from the key; doubled, it separates levels.
const DefaultDelimiter = "_"

// MatchPrefix lowercases name and reports whether it starts with the
// lowercased prefix followed by delimiter. The returned remainder is the
// lowercased name with the prefix and delimiter stripped.
// Examples (delimiter "_"):
//   - MatchPrefix("NEMO_A", "nemo", "_") → "a", true
//   - MatchPrefix("nemo_enV", "NEMO", "_") → "env", true
//   - MatchPrefix("NEMOA", "nemo", "_") → "", false
func MatchPrefix(name, prefix, delimiter string) (string, bool) {
	lowered := strings.ToLower(name)
	effective := strings.ToLower(prefix) + delimiter
	if !strings.HasPrefix(lowered, effective) {
		return "", false
	}
	return lowered[len(effective):], true
}

// SplitPath splits key into path segments on the doubled delimiter.
// Single delimiters within a segment are preserved.
// Examples (delimiter "_"):
//   - "demo__config" → ["demo", "config"]
//   - "demo_config" → ["demo_config"]
//   - "a__b_c__d" → ["a", "b_c", "d"]
func SplitPath(key, delimiter string) []string {
	if delimiter == "" {
		return []string{key}
	}
	return strings.Split(key, delimiter+delimiter)
}

// Assign sets v at path inside m. Missing intermediate levels are created as
// empty Mappings and a non-Mapping value in the way is replaced by one.
// The leaf is always overwritten.
func Assign(m value.Mapping, path []string, v value.Value) {
	if len(path) == 0 {
		return
	}

	current := m
	for _, segment := range path[:len(path)-1] {
		next, ok := current[segment].(value.Mapping)
		if !ok {
			next = value.Mapping{}
			current[segment] = next
		}
		current = next
	}
	current[path[len(path)-1]] = v
}

// StripDashes removes the leading run of '-' from a command-line flag name.
// Examples:
//   - "--a" → "a"
//   - "-a" → "a"
//   - "a-b" → "a-b"
func StripDashes(flag string) string {
	return strings.TrimLeft(flag, "-")
}
