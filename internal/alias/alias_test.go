package alias_test

import (
	"context"
	"errors"
	"testing"

	"github.com/jeffs/conf/internal/alias"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_LastWriteWins(t *testing.T) {
	r := alias.NewRegistry()
	r.Register("x", alias.SimpleExit(func(context.Context, []string) int { return 1 }))
	r.Register("x", alias.SimpleExit(func(context.Context, []string) int { return 7 }))

	d := &alias.Dispatcher{Registry: r}
	res, err := d.Invoke(context.Background(), "x", nil)
	require.NoError(t, err)
	assert.Equal(t, 7, res.ExitCode)
	assert.Equal(t, 1, r.Len())
}

func TestRegistry_RemoveAndNames(t *testing.T) {
	r := alias.NewRegistry()
	noop := alias.SimpleExit(func(context.Context, []string) int { return 0 })
	r.Register("b", noop)
	r.Register("a", noop)
	r.Register("c", noop)
	r.Remove("b")
	r.Remove("missing")

	assert.Equal(t, []string{"a", "c"}, r.Names())
	_, ok := r.Lookup("b")
	assert.False(t, ok)
}

func TestDispatcher_UnknownAlias(t *testing.T) {
	d := &alias.Dispatcher{Registry: alias.NewRegistry()}
	_, err := d.Invoke(context.Background(), "nope", nil)
	assert.True(t, errors.Is(err, alias.ErrUnknownAlias))
}

func TestDispatcher_NormalizesSimpleExit(t *testing.T) {
	r := alias.NewRegistry()
	var got []string
	r.Register("s", alias.SimpleExit(func(_ context.Context, args []string) int {
		got = args
		return 3
	}))

	res, err := (&alias.Dispatcher{Registry: r}).Invoke(context.Background(), "s", []string{"a", "b"})
	require.NoError(t, err)
	assert.Equal(t, alias.Result{ExitCode: 3}, res)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestDispatcher_StructuredPassthrough(t *testing.T) {
	r := alias.NewRegistry()
	want := alias.Result{Stdout: "out", Stderr: "err", ExitCode: 4}
	r.Register("s", alias.Structured(func(context.Context, []string) alias.Result { return want }))

	res, err := (&alias.Dispatcher{Registry: r}).Invoke(context.Background(), "s", nil)
	require.NoError(t, err)
	assert.Equal(t, want, res)
}

func TestArityResult(t *testing.T) {
	res := alias.ArityResult("mc", "1", 0)
	assert.Equal(t, 2, res.ExitCode)
	assert.Contains(t, res.Stderr, "mc")
	assert.Empty(t, res.Stdout)
}
