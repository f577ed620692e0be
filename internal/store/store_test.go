package store_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nirbeaver/property-management/internal/store"
)

type record struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

func TestSaveAndLoad(t *testing.T) {
	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	in := []record{{Name: "a", Count: 1}, {Name: "b", Count: 2}}
	require.NoError(t, db.Save("things", in))

	var out []record
	require.NoError(t, db.Load("things", &out))
	assert.Equal(t, in, out)
}

func TestLoadMissingCollection(t *testing.T) {
	db, err := store.New(t.TempDir())
	require.NoError(t, err)

	var out []record
	assert.ErrorIs(t, db.Load("nothing", &out), store.ErrNotFound)
}

func TestLoadMalformedFile(t *testing.T) {
	dir := t.TempDir()

	db, err := store.New(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	var out []record
	err = db.Load("things", &out)
	require.Error(t, err)
	assert.NotErrorIs(t, err, store.ErrNotFound, "malformed is distinct from missing")
}

func TestSaveOverwrites(t *testing.T) {
	dir := t.TempDir()

	db, err := store.New(dir)
	require.NoError(t, err)

	require.NoError(t, db.Save("things", []record{{Name: "a"}, {Name: "b"}}))
	require.NoError(t, db.Save("things", []record{{Name: "c"}}))

	var out []record
	require.NoError(t, db.Load("things", &out))
	require.Len(t, out, 1)
	assert.Equal(t, "c", out[0].Name)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temp files must not linger")
}
