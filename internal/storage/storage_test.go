package storage

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryStore(t *testing.T) {
	store := NewMemory()

	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, store.Put("greeting", []byte(`"hello"`)))
	raw, err := store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"hello"`), raw)

	// The store hands out copies, not its internal buffer.
	raw[0] = 'X'
	again, err := store.Get("greeting")
	require.NoError(t, err)
	assert.Equal(t, []byte(`"hello"`), again)

	require.NoError(t, store.Delete("greeting"))
	_, err = store.Get("greeting")
	assert.ErrorIs(t, err, ErrNoSlot)

	// Deleting an absent key is not an error.
	assert.NoError(t, store.Delete("greeting"))
}

func TestSQLiteStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "slots.db")

	store, err := OpenSQLite(path)
	require.NoError(t, err)

	require.NoError(t, store.Put("k", []byte(`{"a":1}`)))
	require.NoError(t, store.Put("k", []byte(`{"a":2}`)))

	raw, err := store.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), raw)

	_, err = store.Get("other")
	assert.ErrorIs(t, err, ErrNoSlot)

	require.NoError(t, store.Close())

	// Values survive reopening the database file.
	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	raw, err = reopened.Get("k")
	require.NoError(t, err)
	assert.Equal(t, []byte(`{"a":2}`), raw)

	require.NoError(t, reopened.Delete("k"))
	_, err = reopened.Get("k")
	assert.ErrorIs(t, err, ErrNoSlot)
}

func TestSlotLoadSaveClear(t *testing.T) {
	store := NewMemory()
	slot := NewSlot[[]string](store, "names")

	_, ok, err := slot.Load()
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, slot.Save([]string{"pho", "banh mi"}))

	names, ok, err := slot.Load()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []string{"pho", "banh mi"}, names)

	require.NoError(t, slot.Clear())
	_, ok, err = slot.Load()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSlotCorruptData(t *testing.T) {
	store := NewMemory()
	require.NoError(t, store.Put("names", []byte("not json")))

	slot := NewSlot[[]string](store, "names")
	_, _, err := slot.Load()
	assert.ErrorIs(t, err, ErrCorruptSlot)
}
