package opts

import (
	"flag"
	"io"
	"testing"

	"github.com/mfridman/xflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromFlagSet(t *testing.T) {
	t.Parallel()

	t.Run("bool flags become flag declarations", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		debug := fs.Bool("debug", false, "enable debug output")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)
		defs := set.Definitions()
		require.Len(t, defs, 1)
		assert.Equal(t, KindFlag, defs[0].Kind)

		require.NoError(t, set.Parse([]string{"--debug"}))
		assert.True(t, *debug)
	})
	t.Run("value flags become fields", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		name := fs.String("name", "", "who to greet")
		count := fs.Int("count", 1, "how many times")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)

		require.NoError(t, set.Parse([]string{"--name", "gopher", "--count", "3"}))
		assert.Equal(t, "gopher", *name)
		assert.Equal(t, 3, *count)
	})
	t.Run("placeholder from backquoted usage", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.String("output", "", "write results to `file`")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)
		def := set.Definitions()[0]
		assert.Equal(t, "file", def.Placeholder)
		assert.Equal(t, "write results to file", def.Description)
	})
	t.Run("placeholder defaults to the value type", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.String("name", "", "who to greet")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)
		assert.Equal(t, "string", set.Definitions()[0].Placeholder)
	})
	t.Run("literal braces in usage are dropped", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.String("expand", "", "substitute {vars} in the input")
		fs.String("output", "", "write {results} to `file`")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)
		defs := set.Definitions()
		require.Len(t, defs, 2)
		assert.Equal(t, "substitute vars in the input string", defs[0].Description)
		assert.Equal(t, "string", defs[0].Placeholder)
		assert.Equal(t, "write results to file", defs[1].Description)
		assert.Equal(t, "file", defs[1].Placeholder)
	})
	t.Run("bad value aborts the parse", func(t *testing.T) {
		t.Parallel()

		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.Int("count", 0, "how many times")

		set, err := New(FromFlagSet(fs)...)
		require.NoError(t, err)

		err = set.Parse([]string{"--count", "nope"})
		require.Error(t, err)
		assert.ErrorContains(t, err, `invalid value "nope"`)
	})
}

// TestFromFlagSetParity parses equivalent input through a Set built with
// FromFlagSet and through xflag.ParseToEnd on an identical flag set, and
// expects the same final values.
func TestFromFlagSetParity(t *testing.T) {
	t.Parallel()

	type config struct {
		verbose bool
		name    string
		count   int
	}
	newFlagSet := func(c *config) *flag.FlagSet {
		fs := flag.NewFlagSet("parity", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		fs.BoolVar(&c.verbose, "verbose", false, "enable verbose output")
		fs.StringVar(&c.name, "name", "", "who to greet")
		fs.IntVar(&c.count, "count", 1, "how many times")
		return fs
	}

	args := []string{"pos1", "--verbose", "--name", "gopher", "pos2", "--count", "42"}

	var got config
	set, err := New(FromFlagSet(newFlagSet(&got))...)
	require.NoError(t, err)
	require.NoError(t, set.Parse(args))

	var want config
	require.NoError(t, xflag.ParseToEnd(newFlagSet(&want), args))

	assert.Equal(t, want, got)
}
