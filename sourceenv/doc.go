// Package sourceenv loads configuration from environment variables.
//
// Key normalization (prefix "nemo"): NEMO_FOO__BAR → foo.bar, nemo_Foo_Bar → foo_bar
//
// Example:
//
//	source := sourceenv.New(sourceenv.Options{Prefix: "nemo", KeepInteger: true})
//	resolver := cec.New().WithSource(source)
package sourceenv
