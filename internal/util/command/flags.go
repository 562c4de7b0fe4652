package command

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github/chapool/pouch-wallet/internal/config"
)

const (
	FlagDataDir      = "data-dir"
	FlagStoreBackend = "store-backend"
)

// BindPersistentFlags adds the flags overriding the store config to cmd and
// all of its subcommands.
func BindPersistentFlags(cmd *cobra.Command) error {
	flags := cmd.PersistentFlags()
	flags.String(FlagDataDir, "", "directory of the wallet store files (overrides POUCH_DATA_DIR)")
	flags.String(FlagStoreBackend, "", "metadata store backend: bolt, memory or postgres (overrides POUCH_STORE_BACKEND)")

	for _, name := range []string{FlagDataDir, FlagStoreBackend} {
		if err := viper.BindPFlag(name, flags.Lookup(name)); err != nil {
			return err
		}
	}

	return nil
}

// ServerConfig returns the config from the environment with flag overrides applied.
func ServerConfig() config.Server {
	cfg := config.DefaultServiceConfigFromEnv()

	if dir := viper.GetString(FlagDataDir); dir != "" {
		cfg.Store.DataDir = dir
	}

	switch backend := viper.GetString(FlagStoreBackend); backend {
	case config.StoreBackendBolt, config.StoreBackendMemory, config.StoreBackendPostgres:
		cfg.Store.Backend = backend
	}

	return cfg
}
