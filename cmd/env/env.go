package env

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/util/command"
)

func New() *cobra.Command {
	return &cobra.Command{
		Use:   "env",
		Short: "Prints the env",
		Long: `Prints the currently applied env

You may use this cmd to get an overview about how
your ENV_VARS are bound by the server config.
Please note that certain secrets are automatically
removed from this output.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := command.ServerConfig()
			cfg.Store.PostgresDSN = redactDSN(cfg.Store.PostgresDSN)

			c, err := json.MarshalIndent(cfg, "", "  ")
			if err != nil {
				return fmt.Errorf("failed to marshal the env: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), string(c))

			return nil
		},
	}
}
