package value

import (
	"encoding/json"
	"math/big"
	"sort"
)

// Value is one configuration value. The set of implementations is closed.
type Value interface {
	isValue()
}

// String is a JSON string or a raw value that failed to parse.
type String string

// Int is a JSON number without fraction or exponent that fits in int64.
type Int int64

// BigInt is an integer literal outside the int64 range, kept as its decimal digits.
type BigInt string

// Float is any other JSON number.
type Float float64

// Bool is a JSON boolean.
type Bool bool

// Null is the JSON null literal.
type Null struct{}

// Sequence is an ordered list of values.
type Sequence []Value

// Mapping maps keys to values. It is the configuration type.
type Mapping map[string]Value

func (String) isValue()   {}
func (Int) isValue()      {}
func (BigInt) isValue()   {}
func (Float) isValue()    {}
func (Bool) isValue()     {}
func (Null) isValue()     {}
func (Sequence) isValue() {}
func (Mapping) isValue()  {}

// MarshalJSON encodes Null as the null literal.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

// MarshalJSON encodes BigInt as the bare number literal.
func (b BigInt) MarshalJSON() ([]byte, error) {
	return []byte(b), nil
}

// Int returns b as a *big.Int, or nil when b holds no valid integer.
func (b BigInt) Int() *big.Int {
	i, ok := new(big.Int).SetString(string(b), 10)
	if !ok {
		return nil
	}
	return i
}

// Keys returns the mapping's keys in sorted order.
func (m Mapping) Keys() []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Clone returns a deep copy of the mapping.
func (m Mapping) Clone() Mapping {
	if m == nil {
		return nil
	}
	out := make(Mapping, len(m))
	for k, v := range m {
		out[k] = CloneValue(v)
	}
	return out
}

// CloneValue returns a deep copy of v. Scalars are returned as is.
func CloneValue(v Value) Value {
	switch t := v.(type) {
	case Mapping:
		return t.Clone()
	case Sequence:
		if t == nil {
			return Sequence(nil)
		}
		out := make(Sequence, len(t))
		for i, item := range t {
			out[i] = CloneValue(item)
		}
		return out
	default:
		return v
	}
}

// ToNative converts v into plain Go values: map[string]any, []any, string,
// int64, json.Number (for BigInt), float64, bool or nil.
func ToNative(v Value) any {
	switch t := v.(type) {
	case String:
		return string(t)
	case Int:
		return int64(t)
	case BigInt:
		return json.Number(t)
	case Float:
		return float64(t)
	case Bool:
		return bool(t)
	case Null, nil:
		return nil
	case Sequence:
		out := make([]any, len(t))
		for i, item := range t {
			out[i] = ToNative(item)
		}
		return out
	case Mapping:
		out := make(map[string]any, len(t))
		for k, item := range t {
			out[k] = ToNative(item)
		}
		return out
	default:
		return nil
	}
}

// FromNative converts plain Go values (as produced by encoding/json, YAML or
// TOML decoders) into a Value. Unknown types become their JSON encoding
// re-parsed, or Null when they cannot be encoded.
func FromNative(v any) Value {
	switch t := v.(type) {
	case nil:
		return Null{}
	case Value:
		return t
	case string:
		return String(t)
	case bool:
		return Bool(t)
	case int:
		return Int(t)
	case int8:
		return Int(t)
	case int16:
		return Int(t)
	case int32:
		return Int(t)
	case int64:
		return Int(t)
	case uint8:
		return Int(t)
	case uint16:
		return Int(t)
	case uint32:
		return Int(t)
	case float32:
		return Float(t)
	case float64:
		return Float(t)
	case json.Number:
		return fromNumber(t)
	case []any:
		out := make(Sequence, len(t))
		for i, item := range t {
			out[i] = FromNative(item)
		}
		return out
	case map[string]any:
		out := make(Mapping, len(t))
		for k, item := range t {
			out[k] = FromNative(item)
		}
		return out
	default:
		data, err := json.Marshal(t)
		if err != nil {
			return Null{}
		}
		parsed, err := Parse(string(data))
		if err != nil {
			return Null{}
		}
		return parsed
	}
}
