package flagtype

import (
	"flag"
	"regexp"
)

type regexpValue struct {
	dest **regexp.Regexp
}

// Regexp returns a [flag.Value] that compiles the field value as a regular
// expression into *dest. An invalid pattern rejects the value with the
// compile error.
func Regexp(dest **regexp.Regexp) flag.Value {
	return &regexpValue{dest: dest}
}

func (v *regexpValue) String() string {
	if v.dest == nil || *v.dest == nil {
		return ""
	}
	return (*v.dest).String()
}

func (v *regexpValue) Set(s string) error {
	re, err := regexp.Compile(s)
	if err != nil {
		return err
	}
	*v.dest = re
	return nil
}

func (v *regexpValue) Get() any {
	if v.dest == nil {
		return (*regexp.Regexp)(nil)
	}
	return *v.dest
}
