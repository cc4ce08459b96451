package flagtype

import (
	"flag"
	"strings"
)

type stringSliceValue struct {
	dest *[]string
}

// StringSlice returns a [flag.Value] that appends each value to *dest,
// allowing repeatable fields like --tag foo --tag bar.
func StringSlice(dest *[]string) flag.Value {
	return &stringSliceValue{dest: dest}
}

func (v *stringSliceValue) String() string {
	if v.dest == nil {
		return ""
	}
	return strings.Join(*v.dest, ",")
}

func (v *stringSliceValue) Set(s string) error {
	*v.dest = append(*v.dest, s)
	return nil
}

func (v *stringSliceValue) Get() any {
	if v.dest == nil {
		return []string(nil)
	}
	return *v.dest
}
