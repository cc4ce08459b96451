package opts

import (
	"fmt"
	"strings"
)

// Target is anything that can consume a token sequence: a [*Set] or a
// [*Commands]. Sub-command handlers hand one back to the dispatcher.
type Target interface {
	Parse(args []string) error
}

var (
	_ Target = (*Set)(nil)
	_ Target = (*Commands)(nil)
)

// ParseArgv parses a full argument vector, discarding the first two entries
// (by convention the runtime and script paths) before scanning. Use [Set.Parse]
// when the arguments have already been positioned.
func (s *Set) ParseArgv(argv []string) error {
	return s.Parse(shiftArgv(argv))
}

// Parse scans args left to right, invoking declaration callbacks in token
// order. Matching is a single pass with one token of lookahead and no
// backtracking:
//
//   - A dash-prefixed token matching a flag declaration fires its callback.
//   - A dash-prefixed token matching a field declaration binds the following
//     token as its value and consumes both. A field token with nothing after
//     it is treated as unmatched input.
//   - Unmatched tokens, including bare tokens that happen to equal a declared
//     key, go verbatim to the rest declaration, or are dropped if the set has
//     none.
//
// Declarations are tried in declaration order; the first match wins.
// Unrecognized input never produces an error. The only parse-time failure is
// a [FieldVar] value rejecting its token, which aborts the scan.
func (s *Set) Parse(args []string) error {
	for i := 0; i < len(args); i++ {
		token := args[i]
		key, stripped := normalizeKey(token, s.Strict, s.CaseSensitive)

		var def *Definition
		if stripped {
			def = s.match(key)
		}
		if def != nil {
			if def.Kind == KindFlag {
				if def.do != nil {
					def.do()
				}
				continue
			}
			// Field: bind the next token if one exists, otherwise fall
			// through to the rest sink.
			if i+1 < len(args) {
				value := args[i+1]
				if err := s.invoke(def, value); err != nil {
					return err
				}
				i++
				continue
			}
		}

		if s.rest != nil {
			if err := s.invoke(s.rest, token); err != nil {
				return err
			}
		}
	}
	return nil
}

func (s *Set) invoke(def *Definition, value string) error {
	if def.bind == nil {
		return nil
	}
	if err := def.bind(value); err != nil {
		return fmt.Errorf("option %q: invalid value %q: %w", def.Keys[0], value, err)
	}
	return nil
}

// match returns the first declaration whose alias set contains key, or nil.
func (s *Set) match(key string) *Definition {
	for _, def := range s.defs {
		for _, alias := range def.Keys {
			if !s.CaseSensitive {
				alias = strings.ToLower(alias)
			}
			if alias == key {
				return def
			}
		}
	}
	return nil
}

// normalizeKey maps a raw token to a string comparable against declared keys.
// The second return reports whether any dash prefix was stripped; tokens
// stripped by neither step are never matched and fall through to rest
// handling.
//
// Strict mode encodes the GNU convention: a double dash is stripped only from
// tokens longer than three characters (more than one character after the
// prefix) and a single dash only from two-character tokens. With strict
// disabled, both strips apply regardless of length. The two steps run in
// sequence, the single-dash check evaluated against the remainder of the
// double-dash strip, so a non-strict "---x" reduces to "x".
func normalizeKey(token string, strict, caseSensitive bool) (string, bool) {
	key := token
	stripped := false
	if strings.HasPrefix(key, "--") && (!strict || len(key) > 3) {
		key = key[2:]
		stripped = true
	}
	if strings.HasPrefix(key, "-") && (!strict || len(key) == 2) {
		key = key[1:]
		stripped = true
	}
	if !caseSensitive {
		key = strings.ToLower(key)
	}
	return key, stripped
}

// shiftArgv drops the two leading argv entries.
func shiftArgv(argv []string) []string {
	if len(argv) <= 2 {
		return nil
	}
	return argv[2:]
}
