package opts

import (
	"strings"

	"github.com/pressly/opts/pkg/suggest"
)

// Handler is a two-phase sub-command handler. It is invoked once per dispatch
// with the owning command set and runs its setup phase: declaring whatever
// local bindings it needs and building the [Target] (an option [Set] or a
// nested [Commands]) that will consume the remaining arguments. The
// dispatcher parses through the returned target and then calls after exactly
// once, letting the handler act on the now-populated bindings. A nil after
// function is allowed; a nil target is a [DispatchError].
//
//	func buildHandler(c *opts.Commands) (opts.Target, func() error) {
//	    var showHelp bool
//	    set, _ := opts.New(
//	        opts.Flag("h|help", "print help", func() { showHelp = true }),
//	    )
//	    return set, func() error {
//	        if showHelp {
//	            fmt.Println(set.Usage())
//	        }
//	        return nil
//	    }
//	}
//
// Each dispatch invokes the handler afresh, so bindings captured in the setup
// phase never leak between parses.
type Handler func(c *Commands) (target Target, after func() error)

// BaseHandler is the handler for the no-command and unknown-command paths.
// commandNotFound is false when no command token was present at all, and true
// when a token was present but matched no registered command. In the
// not-found case the token is not consumed: it is delegated to the returned
// target along with everything after it, so a flags-only invocation still
// reaches the base handler's option set.
type BaseHandler func(c *Commands, commandNotFound bool) (target Target, after func() error)

// Commands maps command names to handlers and dispatches to them. Build one
// with [NewCommands]; the command table is immutable afterwards.
type Commands struct {
	// CaseSensitive controls whether command-name lookup folds case. A
	// case-folded match is only attempted when an exact match is absent.
	// Default true.
	CaseSensitive bool

	usage   string
	names   []string // declaration order, for display
	entries map[string]*commandEntry
	base    BaseHandler
}

type commandEntry struct {
	name        string
	description string
	handler     Handler
}

// CommandItem is one element of the declaration list passed to
// [NewCommands]. Use [UsageLine], [Command], or [Base] to produce items.
type CommandItem interface {
	applyCommand(b *commandsBuilder) error
}

type commandsBuilder struct {
	cmds *Commands
}

// Command declares a named sub-command. The handler is invoked on each
// dispatch of that name; see [Handler] for the two-phase protocol.
func Command(name, description string, handler Handler) CommandItem {
	return &commandItem{name: name, description: description, handler: handler}
}

type commandItem struct {
	name        string
	description string
	handler     Handler
}

func (c *commandItem) applyCommand(b *commandsBuilder) error {
	if c.name == "" {
		return configErrorf("command has no name")
	}
	if c.handler == nil {
		return configErrorf("command %q has no handler", c.name)
	}
	if _, ok := b.cmds.entries[c.name]; ok {
		return configErrorf("duplicate command %q", c.name)
	}
	b.cmds.entries[c.name] = &commandEntry{
		name:        c.name,
		description: c.description,
		handler:     c.handler,
	}
	b.cmds.names = append(b.cmds.names, c.name)
	return nil
}

// Base registers the handler for the no-command and unknown-command paths. A
// command set may have at most one.
func Base(handler BaseHandler) CommandItem {
	return baseItem{handler: handler}
}

type baseItem struct {
	handler BaseHandler
}

func (item baseItem) applyCommand(b *commandsBuilder) error {
	if item.handler == nil {
		return configErrorf("nil base handler")
	}
	if b.cmds.base != nil {
		return configErrorf("duplicate base handler")
	}
	b.cmds.base = item.handler
	return nil
}

// NewCommands builds a command set from the given declarations. It returns a
// [ConfigError] on a duplicate command name or a second base handler.
func NewCommands(items ...CommandItem) (*Commands, error) {
	b := &commandsBuilder{
		cmds: &Commands{
			CaseSensitive: true,
			entries:       make(map[string]*commandEntry),
		},
	}
	for _, item := range items {
		if item == nil {
			return nil, configErrorf("nil declaration item")
		}
		if err := item.applyCommand(b); err != nil {
			return nil, err
		}
	}
	return b.cmds, nil
}

// ParseArgv parses a full argument vector, discarding the first two entries
// before dispatching. The shift happens only here, at the outermost entry;
// every delegated parse uses [Commands.Parse].
func (c *Commands) ParseArgv(argv []string) error {
	return c.Parse(shiftArgv(argv))
}

// Parse resolves the first token against the command table and dispatches.
//
// A match consumes the token: the matched handler runs its setup phase, the
// tokens after the command name are parsed through the target it returned,
// and the handler's after function is then called exactly once. No token, or
// a token matching no command, routes to the base handler instead; in the
// no-match case the unmatched token is not consumed and is delegated to the
// base target together with everything after it. Without a base handler those
// paths are a no-op.
func (c *Commands) Parse(args []string) error {
	if len(args) > 0 {
		if entry, ok := c.lookup(args[0]); ok {
			target, after := entry.handler(c)
			return c.run(entry.name, target, after, args[1:])
		}
		if c.base == nil {
			return nil
		}
		target, after := c.base(c, true)
		return c.run("", target, after, args)
	}
	if c.base == nil {
		return nil
	}
	target, after := c.base(c, false)
	return c.run("", target, after, nil)
}

// run drives the delegated-parse and resume phases of a dispatch.
func (c *Commands) run(name string, target Target, after func() error, args []string) error {
	if target == nil {
		return &DispatchError{Command: name}
	}
	if err := target.Parse(args); err != nil {
		return err
	}
	if after != nil {
		return after()
	}
	return nil
}

// lookup resolves a command name, falling back to a case-folded scan when the
// set is case insensitive and no exact entry exists.
func (c *Commands) lookup(name string) (*commandEntry, bool) {
	if entry, ok := c.entries[name]; ok {
		return entry, true
	}
	if c.CaseSensitive {
		return nil, false
	}
	for _, candidate := range c.names {
		if strings.EqualFold(candidate, name) {
			return c.entries[candidate], true
		}
	}
	return nil, false
}

// Suggest returns up to three registered command names similar to name, for
// base handlers that want to print a hint for an unrecognized command.
func (c *Commands) Suggest(name string) []string {
	return suggest.FindSimilar(name, c.names, 3)
}
