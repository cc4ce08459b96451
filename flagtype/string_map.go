package flagtype

import (
	"flag"
	"fmt"
	"sort"
	"strings"
)

type stringMapValue struct {
	dest *map[string]string
}

// StringMap returns a [flag.Value] that parses key=value pairs into *dest.
// The field can be repeated to add entries, like --label env=prod --label
// tier=web. Input is split on the first "=", so values may contain further
// "=" characters. A later pair overwrites an earlier one with the same key.
func StringMap(dest *map[string]string) flag.Value {
	return &stringMapValue{dest: dest}
}

func (v *stringMapValue) String() string {
	if v.dest == nil || *v.dest == nil {
		return ""
	}
	keys := make([]string, 0, len(*v.dest))
	for k := range *v.dest {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		pairs = append(pairs, k+"="+(*v.dest)[k])
	}
	return strings.Join(pairs, ",")
}

func (v *stringMapValue) Set(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("invalid key=value pair %q: missing '='", s)
	}
	if key == "" {
		return fmt.Errorf("invalid key=value pair %q: empty key", s)
	}
	if *v.dest == nil {
		*v.dest = make(map[string]string)
	}
	(*v.dest)[key] = value
	return nil
}

func (v *stringMapValue) Get() any {
	if v.dest == nil {
		return map[string]string(nil)
	}
	return *v.dest
}
