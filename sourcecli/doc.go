// Package sourcecli loads configuration from command-line arguments of the
// form --key=value or -key=value.
//
// Keys are case-preserved. Repeating a key collects its values in order:
//
//	--a=3 --cli=yes --a=4  →  {"a": [3, 4], "cli": "yes"}
//
// Example:
//
//	source := sourcecli.New(sourcecli.Options{Args: os.Args[1:], KeepInteger: true})
//	resolver := cec.New().WithSource(source)
package sourcecli
