package probe

import (
	"fmt"
	"os"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/util/command"
)

func newLiveness() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "liveness",
		Short: "Checks that the wallet data directory is usable",
		Long: `Checks that the wallet data directory exists and is a directory.
Exits with a non-zero code otherwise.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			verbose, _ := cmd.Flags().GetBool(verboseFlag)
			return runLiveness(command.ServerConfig(), verbose)
		},
	}

	cmd.Flags().BoolP(verboseFlag, "v", false, "Show verbose output.")

	return cmd
}

func runLiveness(cfg config.Server, verbose bool) error {
	if cfg.Store.Backend == config.StoreBackendMemory {
		return nil
	}

	info, err := os.Stat(cfg.Store.DataDir)
	if err != nil {
		return fmt.Errorf("data directory unavailable: %w", err)
	}

	if !info.IsDir() {
		return fmt.Errorf("data directory %s is not a directory", cfg.Store.DataDir)
	}

	if verbose {
		log.Info().Str("dir", cfg.Store.DataDir).Str("mode", info.Mode().String()).Msg("Data directory is usable")
	}

	return nil
}
