// Package flagtype provides common [flag.Value] implementations for use with
// [opts.FieldVar]. Each value writes through to a caller-owned destination,
// so the parsed result is available directly after the parse:
//
//	var tags []string
//	var format string
//	set, err := opts.New(
//	    opts.FieldVar("tag=", "add a {tag}, repeatable", flagtype.StringSlice(&tags)),
//	    opts.FieldVar("format=", "output {format}", flagtype.Enum(&format, "json", "yaml", "table")),
//	)
//
// All values also implement [flag.Getter], so they can be registered on a
// plain [flag.FlagSet] with Var and converted back through
// [opts.FromFlagSet].
package flagtype
