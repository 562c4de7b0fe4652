package command_test

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/util/command"
)

func TestServerConfigFlagOverrides(t *testing.T) {
	dir := t.TempDir()

	var cfg config.Server

	cmd := &cobra.Command{
		Use: "test",
		Run: func(_ *cobra.Command, _ []string) {
			cfg = command.ServerConfig()
		},
	}
	require.NoError(t, command.BindPersistentFlags(cmd))

	cmd.SetArgs([]string{"--data-dir", dir, "--store-backend", "memory"})
	require.NoError(t, cmd.Execute())

	assert.Equal(t, dir, cfg.Store.DataDir)
	assert.Equal(t, config.StoreBackendMemory, cfg.Store.Backend)
}
