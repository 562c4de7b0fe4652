package store_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/store"
)

func TestMemoryGetSetDelete(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()

	_, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, kv.Set(ctx, "a", "1"))

	v, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "a"))

	_, ok, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestMemorySetMany(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()

	require.NoError(t, kv.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))

	v, _, err := kv.Get(ctx, "b")
	require.NoError(t, err)
	assert.Equal(t, "2", v)

	err = kv.SetMany(ctx, map[string]string{"c": "3", "": "4"})
	require.ErrorIs(t, err, store.ErrMissingKey)

	_, ok, err := kv.Get(ctx, "c")
	require.NoError(t, err)
	assert.False(t, ok, "a rejected batch must not be partially applied")
}

func TestMemoryClosed(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()
	require.NoError(t, kv.Close())

	_, _, err := kv.Get(ctx, "a")
	require.ErrorIs(t, err, store.ErrClosed)
	require.ErrorIs(t, kv.Set(ctx, "a", "1"), store.ErrClosed)
	require.ErrorIs(t, kv.Delete(ctx, "a"), store.ErrClosed)
}
