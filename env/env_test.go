package env

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefineResolve(t *testing.T) {
	ev := EmptyEnv[int]()
	ev.Define("x", 1)

	got, err := ev.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, 1, got)

	ev.Define("x", 2)
	got, err = ev.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestResolveUndefined(t *testing.T) {
	ev := EmptyEnv[int]()
	_, err := ev.Resolve("missing")
	require.ErrorIs(t, err, ErrNotDefined)
}

func TestEnclosed(t *testing.T) {
	parent := EmptyEnv[int]()
	parent.Define("x", 1)
	parent.Define("y", 2)

	child := EnclosedEnv(parent)
	child.Define("x", 10)

	got, err := child.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, 10, got)

	got, err = child.Resolve("y")
	require.NoError(t, err)
	require.Equal(t, 2, got)
}

func TestWalk(t *testing.T) {
	parent := EmptyEnv[int]()
	parent.Define("x", 1)
	parent.Define("y", 2)

	child := EnclosedEnv(parent)
	child.Define("x", 10)

	seen := make(map[string]int)
	child.Walk(func(key string, value int) {
		seen[key] = value
	})
	require.Equal(t, map[string]int{"x": 10, "y": 2}, seen)
}
