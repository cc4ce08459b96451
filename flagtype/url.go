package flagtype

import (
	"flag"
	"fmt"
	"net/url"
)

type urlValue struct {
	dest **url.URL
}

// URL returns a [flag.Value] that parses the field value as a URL into
// *dest. The URL must have both a scheme and a host.
func URL(dest **url.URL) flag.Value {
	return &urlValue{dest: dest}
}

func (v *urlValue) String() string {
	if v.dest == nil || *v.dest == nil {
		return ""
	}
	return (*v.dest).String()
}

func (v *urlValue) Set(s string) error {
	u, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid URL %q: %w", s, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid URL %q: must have a scheme and host", s)
	}
	*v.dest = u
	return nil
}

func (v *urlValue) Get() any {
	if v.dest == nil {
		return (*url.URL)(nil)
	}
	return *v.dest
}
