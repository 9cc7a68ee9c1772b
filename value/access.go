package value

import (
	"strings"
	"time"

	"github.com/spf13/cast"
)

// Lookup returns the value at path. The literal key is tried first, then
// the path is split on dots and resolved through nested Mappings.
func (m Mapping) Lookup(path string) (Value, bool) {
	if m == nil || path == "" {
		return nil, false
	}
	if v, ok := m[path]; ok {
		return v, true
	}

	current := m
	segments := strings.Split(path, ".")
	for i, segment := range segments {
		v, ok := current[segment]
		if !ok {
			return nil, false
		}
		if i == len(segments)-1 {
			return v, true
		}
		nested, isMap := v.(Mapping)
		if !isMap {
			return nil, false
		}
		current = nested
	}
	return nil, false
}

// Get returns the value at path as a plain Go value, or nil when missing.
func (m Mapping) Get(path string) any {
	v, ok := m.Lookup(path)
	if !ok {
		return nil
	}
	return ToNative(v)
}

// String returns the value at path converted to a string.
//
//	host := cfg.String("server.host")
func (m Mapping) String(path string) string {
	return cast.ToString(m.Get(path))
}

// Int returns the value at path converted to an int, or 0.
func (m Mapping) Int(path string) int {
	return cast.ToInt(m.Get(path))
}

// Int64 returns the value at path converted to an int64, or 0.
func (m Mapping) Int64(path string) int64 {
	return cast.ToInt64(m.Get(path))
}

// Float64 returns the value at path converted to a float64, or 0.
func (m Mapping) Float64(path string) float64 {
	return cast.ToFloat64(m.Get(path))
}

// Bool returns the value at path converted to a bool, or false.
func (m Mapping) Bool(path string) bool {
	return cast.ToBool(m.Get(path))
}

// Duration returns the value at path converted to a time.Duration.
// Strings use time.ParseDuration syntax; numbers are nanoseconds.
func (m Mapping) Duration(path string) time.Duration {
	return cast.ToDuration(m.Get(path))
}

// StringSlice returns the value at path as a []string. A scalar becomes a
// one-element slice, which matches how a single CLI flag stays unwrapped.
func (m Mapping) StringSlice(path string) []string {
	v := m.Get(path)
	switch t := v.(type) {
	case nil:
		return nil
	case []any:
		return cast.ToStringSlice(t)
	default:
		return []string{cast.ToString(t)}
	}
}

// StringMap returns the value at path as a map[string]any, or an empty map.
func (m Mapping) StringMap(path string) map[string]any {
	return cast.ToStringMap(m.Get(path))
}
