// Package opts provides declarative command-line option parsing with callback
// bindings and nested sub-command dispatch.
//
// An option set is built from a flat list of declarations. Each declaration
// binds one or more aliases to a callback: flags take no value, fields consume
// the following token as their value, and a single rest declaration collects
// every token that matches nothing else. Unrecognized input never fails a
// parse; misdeclared option sets fail at construction, before any parsing
// happens.
//
//	var verbose bool
//	var output string
//	set, err := opts.New(
//	    opts.UsageLine("mytool [options] <files>"),
//	    opts.Flag("v|verbose", "enable verbose output", func() { verbose = true }),
//	    opts.Field("o=|output=", "write results to {file}", func(v string) { output = v }),
//	    opts.Rest("input files", func(v string) { files = append(files, v) }),
//	)
//
// Sub-commands are declared the same way and dispatch through a two-phase
// handler: the handler runs its setup, hands back the option set (or nested
// command set) that should consume the remaining arguments, and is resumed
// once parsing completes. See [Handler] for details.
package opts
