package flagtype

import (
	"flag"
	"fmt"
	"slices"
	"strings"
)

type enumValue struct {
	dest    *string
	allowed []string
}

// Enum returns a [flag.Value] that restricts the field to one of the allowed
// values, writing the accepted value to *dest. Any other input is rejected
// with an error listing the valid options. The initial contents of *dest act
// as the default and are not validated.
func Enum(dest *string, allowed ...string) flag.Value {
	return &enumValue{dest: dest, allowed: allowed}
}

// EnumDefault is like [Enum] but writes defaultVal to *dest before any value
// is parsed. The default must be one of the allowed values, otherwise
// EnumDefault panics.
func EnumDefault(dest *string, defaultVal string, allowed []string) flag.Value {
	if !slices.Contains(allowed, defaultVal) {
		panic(fmt.Sprintf("flagtype: default value %q is not in allowed values: %s",
			defaultVal, strings.Join(allowed, ", ")))
	}
	*dest = defaultVal
	return &enumValue{dest: dest, allowed: allowed}
}

func (v *enumValue) String() string {
	if v.dest == nil {
		return ""
	}
	return *v.dest
}

func (v *enumValue) Set(s string) error {
	if !slices.Contains(v.allowed, s) {
		return fmt.Errorf("invalid value %q, must be one of: %s", s, strings.Join(v.allowed, ", "))
	}
	*v.dest = s
	return nil
}

func (v *enumValue) Get() any {
	if v.dest == nil {
		return ""
	}
	return *v.dest
}
