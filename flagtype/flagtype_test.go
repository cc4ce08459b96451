package flagtype

import (
	"flag"
	"net/url"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pressly/opts"
)

func TestStringSlice(t *testing.T) {
	t.Parallel()

	t.Run("appends in order", func(t *testing.T) {
		t.Parallel()
		var tags []string
		v := StringSlice(&tags)
		require.NoError(t, v.Set("foo"))
		require.NoError(t, v.Set("bar"))
		assert.Equal(t, []string{"foo", "bar"}, tags)
		assert.Equal(t, "foo,bar", v.String())
	})
	t.Run("empty", func(t *testing.T) {
		t.Parallel()
		var tags []string
		v := StringSlice(&tags)
		assert.Equal(t, "", v.String())
		assert.Nil(t, v.(flag.Getter).Get())
	})
}

func TestStringMap(t *testing.T) {
	t.Parallel()

	t.Run("parses pairs", func(t *testing.T) {
		t.Parallel()
		var labels map[string]string
		v := StringMap(&labels)
		require.NoError(t, v.Set("env=prod"))
		require.NoError(t, v.Set("tier=web"))
		assert.Equal(t, map[string]string{"env": "prod", "tier": "web"}, labels)
		assert.Equal(t, "env=prod,tier=web", v.String())
	})
	t.Run("value may contain equals", func(t *testing.T) {
		t.Parallel()
		var labels map[string]string
		v := StringMap(&labels)
		require.NoError(t, v.Set("expr=a=b"))
		assert.Equal(t, "a=b", labels["expr"])
	})
	t.Run("later pair overwrites", func(t *testing.T) {
		t.Parallel()
		var labels map[string]string
		v := StringMap(&labels)
		require.NoError(t, v.Set("env=dev"))
		require.NoError(t, v.Set("env=prod"))
		assert.Equal(t, map[string]string{"env": "prod"}, labels)
	})
	t.Run("missing equals", func(t *testing.T) {
		t.Parallel()
		var labels map[string]string
		err := StringMap(&labels).Set("noequals")
		require.ErrorContains(t, err, "missing '='")
	})
	t.Run("empty key", func(t *testing.T) {
		t.Parallel()
		var labels map[string]string
		err := StringMap(&labels).Set("=value")
		require.ErrorContains(t, err, "empty key")
	})
}

func TestEnum(t *testing.T) {
	t.Parallel()

	t.Run("accepts allowed values", func(t *testing.T) {
		t.Parallel()
		format := "json"
		v := Enum(&format, "json", "yaml", "table")
		require.NoError(t, v.Set("yaml"))
		assert.Equal(t, "yaml", format)
	})
	t.Run("rejects other values", func(t *testing.T) {
		t.Parallel()
		format := "json"
		err := Enum(&format, "json", "yaml", "table").Set("xml")
		require.ErrorContains(t, err, "must be one of: json, yaml, table")
		assert.Equal(t, "json", format)
	})
	t.Run("initial contents act as default", func(t *testing.T) {
		t.Parallel()
		format := "table"
		v := Enum(&format, "json", "yaml", "table")
		assert.Equal(t, "table", v.String())
	})
}

func TestEnumDefault(t *testing.T) {
	t.Parallel()

	t.Run("writes the default immediately", func(t *testing.T) {
		t.Parallel()
		var format string
		v := EnumDefault(&format, "json", []string{"json", "yaml", "table"})
		assert.Equal(t, "json", format)
		assert.Equal(t, "json", v.String())
		require.NoError(t, v.Set("table"))
		assert.Equal(t, "table", format)
	})
	t.Run("panics on a default outside the allowed values", func(t *testing.T) {
		t.Parallel()
		var format string
		assert.PanicsWithValue(t,
			`flagtype: default value "xml" is not in allowed values: json, yaml`,
			func() { EnumDefault(&format, "xml", []string{"json", "yaml"}) },
		)
	})
}

func TestRegexp(t *testing.T) {
	t.Parallel()

	t.Run("compiles pattern", func(t *testing.T) {
		t.Parallel()
		var re *regexp.Regexp
		require.NoError(t, Regexp(&re).Set(`^v\d+`))
		require.NotNil(t, re)
		assert.True(t, re.MatchString("v123"))
	})
	t.Run("invalid pattern", func(t *testing.T) {
		t.Parallel()
		var re *regexp.Regexp
		err := Regexp(&re).Set(`[unclosed`)
		require.Error(t, err)
		assert.Nil(t, re)
	})
}

func TestURL(t *testing.T) {
	t.Parallel()

	t.Run("parses url", func(t *testing.T) {
		t.Parallel()
		var u *url.URL
		require.NoError(t, URL(&u).Set("https://example.com/path"))
		require.NotNil(t, u)
		assert.Equal(t, "example.com", u.Host)
	})
	t.Run("requires scheme and host", func(t *testing.T) {
		t.Parallel()
		var u *url.URL
		err := URL(&u).Set("example.com")
		require.ErrorContains(t, err, "must have a scheme and host")
	})
}

// TestFieldVarIntegration binds flagtype values through an option set.
func TestFieldVarIntegration(t *testing.T) {
	t.Parallel()

	var tags []string
	format := "json"
	set, err := opts.New(
		opts.FieldVar("tag=", "add a {tag}, repeatable", StringSlice(&tags)),
		opts.FieldVar("format=", "output {format}", Enum(&format, "json", "yaml", "table")),
	)
	require.NoError(t, err)

	require.NoError(t, set.Parse([]string{"--tag", "a", "--tag", "b", "--format", "yaml"}))
	assert.Equal(t, []string{"a", "b"}, tags)
	assert.Equal(t, "yaml", format)

	err = set.Parse([]string{"--format", "xml"})
	require.ErrorContains(t, err, "must be one of")
}
