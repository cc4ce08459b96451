package opts

import (
	"flag"
	"strings"
)

// FromFlagSet converts the flags defined on fs into declaration items, so an
// existing [flag.FlagSet] can be parsed through a [Set]:
//
//	set, err := opts.New(opts.FromFlagSet(fs)...)
//
// Boolean flags (detected through the IsBoolFlag interface, the same check
// the standard flag package applies) become flag declarations that set the
// value to "true" on match; everything else becomes a field bound to the
// flag's [flag.Value]. The field placeholder is taken from a backquoted name
// in the usage string, as [flag.UnquoteUsage] does.
//
// Matching follows the Set's rules, not the flag package's: no -name=value
// single-token form, and strict mode ties dash count to name length.
func FromFlagSet(fs *flag.FlagSet) []Item {
	var items []Item
	fs.VisitAll(func(f *flag.Flag) {
		if _, ok := f.Value.(interface{ IsBoolFlag() bool }); ok {
			value := f.Value
			items = append(items, Flag(f.Name, f.Usage, func() {
				_ = value.Set("true")
			}))
			return
		}
		placeholder, usage := flag.UnquoteUsage(f)
		items = append(items, FieldVar(f.Name+"=", fieldDescription(f.Usage, usage, placeholder), f.Value))
	})
	return items
}

// fieldDescription rewrites a flag usage string into field-declaration form,
// turning the backquoted value name into a {placeholder}, or appending one
// when the usage has none. Literal braces in the usage text are dropped so
// the result contains exactly one placeholder.
func fieldDescription(raw, unquoted, placeholder string) string {
	raw = stripBraces(raw)
	unquoted = stripBraces(unquoted)
	if !placeholderPattern.MatchString("{" + placeholder + "}") {
		placeholder = "value"
	}
	if quoted := "`" + placeholder + "`"; strings.Contains(raw, quoted) {
		return strings.Replace(raw, quoted, "{"+placeholder+"}", 1)
	}
	if unquoted == "" {
		return "{" + placeholder + "}"
	}
	return unquoted + " {" + placeholder + "}"
}

func stripBraces(s string) string {
	if !strings.ContainsAny(s, "{}") {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r == '{' || r == '}' {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
