package command_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/test"
	"github/chapool/pouch-wallet/internal/util/command"
)

func TestWithServer(t *testing.T) {
	ctx := t.Context()

	var testError = errors.New("test error")

	cfg := test.NewTestServerConfig(t)
	cfg.Logger.PrettyPrintConsole = false

	resultErr := command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		require.NotNil(t, s.Wallet)
		assert.False(t, s.Wallet.HasWallet())

		return testError
	})

	assert.Equal(t, testError, resultErr)
}

func TestWithServerPersistsAcrossRuns(t *testing.T) {
	ctx := t.Context()

	cfg := test.NewTestServerConfig(t)
	cfg.Store.Backend = config.StoreBackendBolt

	err := command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		_, err := s.Wallet.ImportWallet(ctx, []string{test.Mnemonic}, test.Pin)
		return err
	})
	require.NoError(t, err)

	err = command.WithServer(ctx, cfg, func(ctx context.Context, s *api.Server) error {
		assert.True(t, s.Wallet.HasWallet())
		assert.Equal(t, test.Account0Address, s.Wallet.WalletAddress())

		privateKey, err := s.Wallet.PrivateKey(ctx, test.Pin)
		require.NoError(t, err)
		assert.Equal(t, test.Account0PrivateKey, privateKey)

		return nil
	})
	require.NoError(t, err)
}

func TestWithServerRejectsSharedStoreFile(t *testing.T) {
	cfg := test.NewTestServerConfig(t)
	cfg.Store.Backend = config.StoreBackendBolt
	cfg.Store.MetadataFile = cfg.Store.SecretFile

	err := command.WithServer(t.Context(), cfg, func(_ context.Context, _ *api.Server) error {
		t.Fatal("must not be called")
		return nil
	})
	require.Error(t, err)
}
