package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStorageRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)

	_, ok, err := store.Get("missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, store.Set("cart", `[{"id":1}]`))

	value, ok, err := store.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":1}]`, value)
}

func TestFileStorageSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("orders", `[]`))
	require.NoError(t, store.Set("cart", `[{"id":4,"quantity":2}]`))

	reopened, err := NewFileStorage(path)
	require.NoError(t, err)

	value, ok, err := reopened.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[{"id":4,"quantity":2}]`, value)

	value, ok, err = reopened.Get("orders")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `[]`, value)
}

func TestFileStorageLastWriteWins(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("cart", "first"))
	require.NoError(t, store.Set("cart", "second"))

	value, ok, err := store.Get("cart")
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "second", value)
}

func TestFileStorageCorruptFileStartsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "state.json")
	require.NoError(t, os.WriteFile(path, []byte("{{{ not json"), 0644))

	store, err := NewFileStorage(path)
	require.NoError(t, err)

	_, ok, err := store.Get("cart")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFileStorageCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "state.json")

	store, err := NewFileStorage(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("cart", "[]"))

	_, err = os.Stat(path)
	assert.NoError(t, err)
}
