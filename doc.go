// Package cec resolves layered configuration from a JSON file, prefixed
// environment variables and command-line arguments, in increasing priority.
//
// Quick Start:
//
//	cfg, err := cec.ResolveDefault(context.Background())
//	// config.json < NEMO_* env vars < --key=value arguments
//
//	port := cfg.Int("server.port")
//
// Custom source stacks:
//
//	resolver := cec.New().
//	    WithSource(sourcefile.New("config.json", sourcefile.Options{})).
//	    WithSource(sourceenv.New(sourceenv.Options{Prefix: "app", KeepInteger: true})).
//	    WithSource(sourcecli.New(sourcecli.Options{KeepInteger: true}))
//
//	cfg, err := resolver.Resolve(context.Background())
//
// Merging is shallow: a later source replaces a whole top-level key.
// Env keys are lower-cased and split on "__" into nested paths; CLI keys are
// case-preserved and repeated flags collect into a sequence.
//
// See example_test.go for detailed usage.
package cec
