package opts

import (
	"flag"
	"fmt"
	"regexp"
	"strings"
)

// Kind identifies how a declaration consumes input.
type Kind int

const (
	// KindFlag is an option with no value; presence alone fires its callback.
	KindFlag Kind = iota
	// KindField is an option that consumes the following token as its value.
	KindField
	// KindRest is the catch-all sink for tokens matching no declared option.
	KindRest
)

func (k Kind) String() string {
	switch k {
	case KindFlag:
		return "flag"
	case KindField:
		return "field"
	case KindRest:
		return "rest"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// restKey is the reserved key under which the rest declaration participates in
// the set-wide uniqueness check.
const restKey = "<>"

// Definition is one validated option declaration. Definitions are built by
// [New] and are immutable afterwards; the declaration order of a set governs
// both match priority and display order.
type Definition struct {
	// Kind is how this declaration consumes input.
	Kind Kind

	// Keys holds the declared aliases with the field marker (=) stripped.
	// Rest declarations have the single key "<>".
	Keys []string

	// Placeholder is the value name extracted from a field description's
	// {word} token. Empty for flags and rest.
	Placeholder string

	// Description is the display text, with the placeholder braces stripped.
	Description string

	do   func()             // flag callback
	bind func(string) error // field or rest callback
}

// Item is one element of the declaration list passed to [New]. Use
// [UsageLine], [Flag], [Field], [FieldVar], or [Rest] to produce items.
type Item interface {
	applyOption(b *setBuilder) error
}

// UsageLine sets the usage string shown at the top of [Set.Usage] or
// [Commands.Usage]. It may appear anywhere in the declaration list; if it
// appears more than once, the last one wins.
type UsageLine string

func (u UsageLine) applyOption(b *setBuilder) error {
	b.set.usage = string(u)
	return nil
}

func (u UsageLine) applyCommand(b *commandsBuilder) error {
	b.cmds.usage = string(u)
	return nil
}

// Set is an ordered collection of option declarations. Build one with [New];
// the declaration list is immutable afterwards. Strict and CaseSensitive are
// read at parse time and may be toggled between parses.
type Set struct {
	// Strict enforces GNU-style prefixes: a single dash matches only
	// one-character keys and a double dash only longer keys. Disabling it
	// accepts any dash count for any key length. Default true.
	Strict bool

	// CaseSensitive controls whether key comparison folds case. Default true.
	CaseSensitive bool

	usage string
	defs  []*Definition // flag and field declarations, in match priority order
	all   []*Definition // every declaration, in display order
	rest  *Definition
}

// New builds an option set from the given declarations. It returns a
// [ConfigError] if any declaration is invalid: a duplicate key, an alias that
// disagrees with its declaration kind, a missing or malformed field
// placeholder, or an empty alias.
func New(items ...Item) (*Set, error) {
	b := &setBuilder{
		set:  &Set{Strict: true, CaseSensitive: true},
		seen: make(map[string]struct{}),
	}
	for _, item := range items {
		if item == nil {
			return nil, configErrorf("nil declaration item")
		}
		if err := item.applyOption(b); err != nil {
			return nil, err
		}
	}
	return b.set, nil
}

// Definitions returns every validated declaration, including the rest
// declaration, in declaration order.
func (s *Set) Definitions() []*Definition {
	return s.all
}

type setBuilder struct {
	set  *Set
	seen map[string]struct{}
}

func (b *setBuilder) claim(key string) error {
	if _, ok := b.seen[key]; ok {
		return configErrorf("duplicate key %q", key)
	}
	b.seen[key] = struct{}{}
	return nil
}

// Flag declares an option with no value. Keys is a |-separated alias list;
// fn is invoked each time a token matches one of the aliases.
func Flag(keys, description string, fn func()) Item {
	return &declItem{kind: KindFlag, keys: keys, description: description, do: fn}
}

// Field declares an option that consumes the following token as its value.
// Every alias in keys must end with the field marker (=), and the description
// must contain exactly one {word} placeholder naming the value.
func Field(keys, description string, fn func(value string)) Item {
	item := &declItem{kind: KindField, keys: keys, description: description}
	if fn != nil {
		item.bind = func(v string) error {
			fn(v)
			return nil
		}
	}
	return item
}

// FieldVar is [Field] with the value bound through a [flag.Value] instead of
// a callback. An error from v.Set aborts the parse. This is the only typed
// binding the package offers; see the flagtype subpackage for common values.
func FieldVar(keys, description string, v flag.Value) Item {
	item := &declItem{kind: KindField, keys: keys, description: description}
	if v != nil {
		item.bind = v.Set
	}
	return item
}

// Rest declares the catch-all sink: fn receives, verbatim, every token that
// matches no other declaration. A set may have at most one rest declaration.
func Rest(description string, fn func(value string)) Item {
	item := &declItem{kind: KindRest, keys: restKey, description: description}
	if fn != nil {
		item.bind = func(v string) error {
			fn(v)
			return nil
		}
	}
	return item
}

type declItem struct {
	kind        Kind
	keys        string
	description string
	do          func()
	bind        func(string) error
}

// placeholderPattern matches the {word} value name inside a field
// description.
var placeholderPattern = regexp.MustCompile(`\{(\w+)\}`)

func (d *declItem) applyOption(b *setBuilder) error {
	def := &Definition{
		Kind:        d.kind,
		Description: d.description,
		do:          d.do,
		bind:        d.bind,
	}

	if d.kind == KindRest {
		if err := b.claim(restKey); err != nil {
			return err
		}
		def.Keys = []string{restKey}
		b.set.rest = def
		b.set.all = append(b.set.all, def)
		return nil
	}

	keys, err := splitAliases(d.kind, d.keys)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if err := b.claim(key); err != nil {
			return err
		}
	}
	def.Keys = keys

	if d.kind == KindField {
		placeholder, description, err := extractPlaceholder(d.description)
		if err != nil {
			return err
		}
		def.Placeholder = placeholder
		def.Description = description
	}

	b.set.defs = append(b.set.defs, def)
	b.set.all = append(b.set.all, def)
	return nil
}

// splitAliases breaks a |-separated alias list into individual keys, trimming
// surrounding whitespace and checking each alias against the declaration
// kind: field aliases must carry the trailing field marker (=), flag aliases
// must not. The marker is stripped from the returned keys.
func splitAliases(kind Kind, keys string) ([]string, error) {
	var out []string
	for _, raw := range strings.Split(keys, "|") {
		alias := strings.TrimSpace(raw)
		if alias == "" {
			return nil, configErrorf("empty alias in %q", keys)
		}
		hasMarker := strings.HasSuffix(alias, "=")
		switch kind {
		case KindField:
			if !hasMarker {
				return nil, configErrorf("alias %q is missing the field marker = required by %q", alias, keys)
			}
			alias = strings.TrimSuffix(alias, "=")
			if alias == "" {
				return nil, configErrorf("empty alias in %q", keys)
			}
		case KindFlag:
			if hasMarker {
				return nil, configErrorf("alias %q declares a value but %q is a flag", alias, keys)
			}
		}
		out = append(out, alias)
	}
	return out, nil
}

// extractPlaceholder pulls the single {word} token out of a field
// description, returning the inner word and the description with the braces
// stripped.
func extractPlaceholder(description string) (string, string, error) {
	matches := placeholderPattern.FindAllStringSubmatch(description, -1)
	switch len(matches) {
	case 0:
		return "", "", configErrorf("field description %q has no {placeholder}", description)
	case 1:
		// fall through
	default:
		return "", "", configErrorf("field description %q has %d placeholders, want exactly one", description, len(matches))
	}
	placeholder := matches[0][1]
	display := strings.Replace(description, matches[0][0], placeholder, 1)
	return placeholder, display, nil
}
