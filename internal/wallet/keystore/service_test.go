package keystore_test

import (
	"bytes"
	"encoding/hex"
	"testing"
	"testing/iotest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/test"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
)

func TestSecretLifecycle(t *testing.T) {
	ctx := t.Context()
	ks := keystore.NewService(store.NewMemory())

	_, err := ks.GetSecret(ctx, keystore.MnemonicKey)
	require.ErrorIs(t, err, keystore.ErrSecretNotFound)

	require.NoError(t, ks.SetSecret(ctx, keystore.MnemonicKey, "ciphertext"))

	value, err := ks.GetSecret(ctx, keystore.MnemonicKey)
	require.NoError(t, err)
	assert.Equal(t, "ciphertext", value)

	require.NoError(t, ks.DeleteSecret(ctx, keystore.MnemonicKey))
	require.NoError(t, ks.DeleteSecret(ctx, keystore.MnemonicKey))

	_, err = ks.GetSecret(ctx, keystore.MnemonicKey)
	require.ErrorIs(t, err, keystore.ErrSecretNotFound)
}

func TestSetSecretsValidation(t *testing.T) {
	ctx := t.Context()
	ks := keystore.NewService(store.NewMemory())

	require.ErrorIs(t, ks.SetSecret(ctx, "", "x"), keystore.ErrMissingSecretName)
	require.ErrorIs(t, ks.SetSecret(ctx, "name", ""), keystore.ErrMissingSecretValue)

	err := ks.SetSecrets(ctx, map[string]string{
		keystore.PrivateKeyName(0): "a",
		keystore.PrivateKeyName(1): "",
	})
	require.ErrorIs(t, err, keystore.ErrMissingSecretValue)

	_, err = ks.GetSecret(ctx, keystore.PrivateKeyName(0))
	require.ErrorIs(t, err, keystore.ErrSecretNotFound)
}

func TestPrivateKeyName(t *testing.T) {
	assert.Equal(t, "pouch_pk_enc_0", keystore.PrivateKeyName(0))
	assert.Equal(t, "pouch_pk_enc_12", keystore.PrivateKeyName(12))
}

func TestGetOrCreateSalt(t *testing.T) {
	ctx := t.Context()
	ks := keystore.NewService(store.NewMemory())

	_, err := ks.GetSalt(ctx)
	require.ErrorIs(t, err, keystore.ErrSecretNotFound)

	salt, err := ks.GetOrCreateSalt(ctx)
	require.NoError(t, err)

	raw, err := hex.DecodeString(salt)
	require.NoError(t, err)
	assert.Len(t, raw, keystore.SaltLength)

	again, err := ks.GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, salt, again)

	require.NoError(t, ks.DeleteSalt(ctx))

	fresh, err := ks.GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.NotEqual(t, salt, fresh)
}

func TestGetOrCreateSaltUsesRandomSource(t *testing.T) {
	ctx := t.Context()
	ks := keystore.NewServiceWithRand(store.NewMemory(), bytes.NewReader(bytes.Repeat([]byte{0xab}, keystore.SaltLength)))

	salt, err := ks.GetOrCreateSalt(ctx)
	require.NoError(t, err)
	assert.Equal(t, hex.EncodeToString(bytes.Repeat([]byte{0xab}, keystore.SaltLength)), salt)
}

func TestGetOrCreateSaltEntropyFailure(t *testing.T) {
	ctx := t.Context()
	kv := store.NewMemory()
	ks := keystore.NewServiceWithRand(kv, iotest.ErrReader(assert.AnError))

	_, err := ks.GetOrCreateSalt(ctx)
	require.ErrorIs(t, err, assert.AnError)

	_, ok, err := kv.Get(ctx, keystore.SaltKey)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStoreUnavailable(t *testing.T) {
	ctx := t.Context()
	kv := test.NewFaultyKV(store.NewMemory())
	ks := keystore.NewService(kv)

	kv.FailAll(true)

	_, err := ks.GetOrCreateSalt(ctx)
	require.ErrorIs(t, err, store.ErrUnavailable)

	_, err = ks.GetSecret(ctx, keystore.MnemonicKey)
	require.ErrorIs(t, err, store.ErrUnavailable)

	require.ErrorIs(t, ks.SetSecret(ctx, keystore.MnemonicKey, "x"), store.ErrUnavailable)
	require.ErrorIs(t, ks.DeleteSecret(ctx, keystore.MnemonicKey), store.ErrUnavailable)
}
