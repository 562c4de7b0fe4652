package boltstore_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/store"
	boltstore "github/chapool/pouch-wallet/internal/store/bolt"
)

func openTestStore(t *testing.T) (store.KV, string) {
	t.Helper()

	path := filepath.Join(t.TempDir(), "data", "secrets.db")
	kv, err := boltstore.Open(path, boltstore.Options{})
	require.NoError(t, err)

	return kv, path
}

func TestPersistsAcrossReopen(t *testing.T) {
	ctx := t.Context()
	kv, path := openTestStore(t)

	require.NoError(t, kv.SetMany(ctx, map[string]string{"a": "1", "b": "2"}))
	require.NoError(t, kv.Close())

	kv, err := boltstore.Open(path, boltstore.Options{})
	require.NoError(t, err)
	defer kv.Close()

	v, ok, err := kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "1", v)

	require.NoError(t, kv.Delete(ctx, "a"))
	require.NoError(t, kv.Delete(ctx, "missing"))

	_, ok, err = kv.Get(ctx, "a")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFilePermissions(t *testing.T) {
	kv, path := openTestStore(t)
	defer kv.Close()

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm())
}

func TestMissingKey(t *testing.T) {
	ctx := t.Context()
	kv, _ := openTestStore(t)
	defer kv.Close()

	_, _, err := kv.Get(ctx, "")
	require.ErrorIs(t, err, store.ErrMissingKey)
	require.ErrorIs(t, kv.SetMany(ctx, map[string]string{"": "x"}), store.ErrMissingKey)
	require.ErrorIs(t, kv.Delete(ctx, ""), store.ErrMissingKey)
}

func TestLockedFileIsUnavailable(t *testing.T) {
	kv, path := openTestStore(t)
	defer kv.Close()

	_, err := boltstore.Open(path, boltstore.Options{Timeout: 50 * time.Millisecond})
	require.ErrorIs(t, err, store.ErrUnavailable)
}

func TestClosedStoreIsUnavailable(t *testing.T) {
	ctx := t.Context()
	kv, _ := openTestStore(t)
	require.NoError(t, kv.Close())

	_, _, err := kv.Get(ctx, "a")
	require.ErrorIs(t, err, store.ErrUnavailable)
	require.ErrorIs(t, kv.Set(ctx, "a", "1"), store.ErrUnavailable)
}
