// Package value defines the closed set of configuration values produced by
// every source: String, Int, BigInt, Float, Bool, Null, Sequence and Mapping.
// BigInt holds integer literals that overflow int64 as their exact digits.
//
// Mapping is the configuration type itself. Values are created by Parse
// (strict JSON), by Coerce (JSON sniffing with a raw-string fallback) or by
// FromNative, and converted back with ToNative.
//
// Example:
//
//	v := value.Coerce("3", true)   // value.Int(3)
//	v = value.Coerce("yes", true)  // value.String("yes")
//	v = value.Coerce("3", false)   // value.String("3")
package value
