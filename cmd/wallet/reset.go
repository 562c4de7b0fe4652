package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/wallet"
)

const yesFlag = "yes"

var errResetNotConfirmed = errors.New("reset deletes the mnemonic and all keys, confirm with --yes")

func newReset() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Deletes the wallet",
		Long: `Deletes the mnemonic, every private key, the encryption salt and all
account metadata. Without a backup of the mnemonic the funds are lost.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if yes, _ := cmd.Flags().GetBool(yesFlag); !yes {
				return errResetNotConfirmed
			}

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if err := m.ResetWallet(ctx); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "Wallet reset.")

				return nil
			})
		},
	}

	cmd.Flags().Bool(yesFlag, false, "confirm the reset")

	return cmd
}
