package opts

import "fmt"

// ConfigError reports an invalid declaration list. It is returned by [New]
// and [NewCommands] when the declarations themselves are wrong: duplicate
// keys, aliases that disagree with their declaration kind, bad field
// placeholders, or duplicate command names. A ConfigError always surfaces at
// construction, before any parse runs.
type ConfigError struct {
	err error
}

func (e *ConfigError) Error() string {
	if e == nil || e.err == nil {
		return "invalid declaration"
	}
	return "invalid declaration: " + e.err.Error()
}

func (e *ConfigError) Unwrap() error { return e.err }

func configErrorf(format string, args ...any) error {
	return &ConfigError{err: fmt.Errorf(format, args...)}
}

// DispatchError reports a sub-command handler that failed to produce a parse
// target. It is returned from [Commands.Parse] when a handler returns a nil
// [Target].
type DispatchError struct {
	// Command is the command name being dispatched, or empty for the base
	// handler.
	Command string
}

func (e *DispatchError) Error() string {
	if e == nil {
		return "<nil>"
	}
	if e.Command == "" {
		return "base handler returned no parse target"
	}
	return fmt.Sprintf("command %q: handler returned no parse target", e.Command)
}
