// Package sourcefile loads configuration from a JSON file.
//
// Keys keep their original case and values keep their JSON types. A file
// that is missing or cannot be parsed contributes nothing and logs a warning.
//
// Example:
//
//	source := sourcefile.New("config.json", sourcefile.Options{})
//	resolver := cec.New().WithSource(source)
package sourcefile
