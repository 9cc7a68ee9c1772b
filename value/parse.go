package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrTrailingData is returned by Parse when the text holds more than one JSON document.
var ErrTrailingData = errors.New("value: unexpected data after JSON document")

// Parse decodes text as exactly one JSON document. Surrounding whitespace is
// allowed; anything after the document is an error.
func Parse(text string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(text))
	dec.UseNumber()

	var raw any
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	var extra any
	if err := dec.Decode(&extra); err != io.EOF {
		return nil, ErrTrailingData
	}

	return FromNative(raw), nil
}

// fromNumber keeps integer literals as Int, or BigInt when they overflow
// int64, and everything else as Float.
func fromNumber(n json.Number) Value {
	s := n.String()
	if !strings.ContainsAny(s, ".eE") {
		i, err := strconv.ParseInt(s, 10, 64)
		if err == nil {
			return Int(i)
		}
		if errors.Is(err, strconv.ErrRange) {
			return BigInt(s)
		}
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return String(s)
	}
	return Float(f)
}
