package value

import "strconv"

// Coerce turns a raw source string into a Value by JSON sniffing.
// Text that is not valid JSON is returned unchanged as a String.
// When keepInteger is false a top-level Int or BigInt is demoted to its
// decimal String.
func Coerce(raw string, keepInteger bool) Value {
	v, err := Parse(raw)
	if err != nil {
		return String(raw)
	}
	if keepInteger {
		return v
	}

	switch i := v.(type) {
	case Int:
		return String(strconv.FormatInt(int64(i), 10))
	case BigInt:
		return String(i)
	default:
		return v
	}
}
