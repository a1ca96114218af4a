package storage

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBadgerStorePutGet(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("example.ton", []byte(`{"address":"abcd.bag"}`)))

	data, err := store.Get("example.ton")
	require.NoError(t, err)
	require.Equal(t, []byte(`{"address":"abcd.bag"}`), data)
}

func TestBadgerStoreGetMissing(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	_, err = store.Get("nobody.ton")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBadgerStoreOverwrite(t *testing.T) {
	store, err := NewBadgerStore(t.TempDir())
	require.NoError(t, err)
	defer store.Close()

	require.NoError(t, store.Put("example.ton", []byte("old")))
	require.NoError(t, store.Put("example.ton", []byte("new")))

	data, err := store.Get("example.ton")
	require.NoError(t, err)
	require.Equal(t, []byte("new"), data)
}
