package value

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerce(t *testing.T) {
	tests := []struct {
		name        string
		raw         string
		keepInteger bool
		expected    Value
	}{
		{name: "integer kept", raw: "1", keepInteger: true, expected: Int(1)},
		{name: "integer demoted", raw: "1", keepInteger: false, expected: String("1")},
		{name: "negative zero demoted", raw: "-0", keepInteger: false, expected: String("0")},
		{name: "bare word", raw: "yes", keepInteger: true, expected: String("yes")},
		{name: "bare word without integers", raw: "yes", keepInteger: false, expected: String("yes")},
		{name: "quoted string", raw: `"yes"`, keepInteger: true, expected: String("yes")},
		{name: "float", raw: "1.5", keepInteger: false, expected: Float(1.5)},
		{name: "exponent is float", raw: "1e3", keepInteger: true, expected: Float(1000)},
		{name: "boolean", raw: "true", keepInteger: false, expected: Bool(true)},
		{name: "null", raw: "null", keepInteger: true, expected: Null{}},
		{name: "empty string", raw: "", keepInteger: true, expected: String("")},
		{name: "whitespace around literal", raw: " 42 ", keepInteger: true, expected: Int(42)},
		{name: "trailing data", raw: "1 2", keepInteger: true, expected: String("1 2")},
		{name: "leading zero is not JSON", raw: "007", keepInteger: true, expected: String("007")},
		{
			name:        "object",
			raw:         `{"key": "value"}`,
			keepInteger: true,
			expected:    Mapping{"key": String("value")},
		},
		{
			name:        "nested integers survive demotion",
			raw:         `[1, {"n": 2}]`,
			keepInteger: false,
			expected:    Sequence{Int(1), Mapping{"n": Int(2)}},
		},
		{name: "integer beyond int64 kept", raw: "12345678901234567890123", keepInteger: true, expected: BigInt("12345678901234567890123")},
		{name: "integer beyond int64 demoted", raw: "12345678901234567890123", keepInteger: false, expected: String("12345678901234567890123")},
		{name: "negative integer beyond int64 demoted", raw: "-9223372036854775809", keepInteger: false, expected: String("-9223372036854775809")},
		{name: "large exponent stays raw", raw: "1e400", keepInteger: true, expected: String("1e400")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Coerce(tt.raw, tt.keepInteger))
		})
	}
}
