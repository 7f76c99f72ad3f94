package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/midbel/tally"
	"github.com/midbel/tally/env"
)

func TestSaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.db")

	st, err := Open(path)
	require.NoError(t, err)

	ev := env.EmptyEnv[tally.Value]()
	ev.Define("x", tally.CreateReal(4.2))
	ev.Define("msg", tally.CreateString("hello"))
	ev.Define("ok", tally.CreateBool(true))

	require.NoError(t, st.Save(ev))
	require.NoError(t, st.Close())

	st, err = Open(path)
	require.NoError(t, err)
	defer st.Close()

	fresh := env.EmptyEnv[tally.Value]()
	require.NoError(t, st.Load(fresh))

	for _, name := range []string{"x", "msg", "ok"} {
		want, err := ev.Resolve(name)
		require.NoError(t, err)
		got, err := fresh.Resolve(name)
		require.NoError(t, err)
		require.Equal(t, want.Raw(), got.Raw(), name)
	}
}

func TestLoadWithoutSave(t *testing.T) {
	st, err := Open(filepath.Join(t.TempDir(), "vars.db"))
	require.NoError(t, err)
	defer st.Close()

	ev := env.EmptyEnv[tally.Value]()
	require.NoError(t, st.Load(ev))
	_, err = ev.Resolve("anything")
	require.ErrorIs(t, err, env.ErrNotDefined)
}

func TestSaveOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vars.db")

	st, err := Open(path)
	require.NoError(t, err)
	defer st.Close()

	ev := env.EmptyEnv[tally.Value]()
	ev.Define("x", tally.CreateReal(1))
	require.NoError(t, st.Save(ev))

	ev.Define("x", tally.CreateReal(2))
	require.NoError(t, st.Save(ev))

	fresh := env.EmptyEnv[tally.Value]()
	require.NoError(t, st.Load(fresh))
	got, err := fresh.Resolve("x")
	require.NoError(t, err)
	require.Equal(t, 2.0, got.Raw())
}

func TestDecodeValue(t *testing.T) {
	_, err := decodeValue(nil)
	require.ErrorIs(t, err, ErrValue)

	_, err = decodeValue([]byte("zoops"))
	require.ErrorIs(t, err, ErrValue)

	val, err := decodeValue([]byte("n4.2"))
	require.NoError(t, err)
	require.Equal(t, 4.2, val.Raw())

	val, err = decodeValue([]byte("b true"))
	require.Error(t, err)
	require.Nil(t, val)
}
