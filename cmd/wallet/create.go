package wallet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/wallet"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

const forceFlag = "force"

var errWalletExists = errors.New("a wallet already exists, use --force to replace it")

func newCreate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Creates a wallet from a new random mnemonic",
		Long: `Creates a wallet from a new random mnemonic and prints it once.
Write the mnemonic down, it is the only way to restore the wallet.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool(forceFlag)
			words, _ := cmd.Flags().GetInt(wordsFlag)
			p := newPrompter(cmd)

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if m.HasWallet() && !force {
					return errWalletExists
				}

				mnemonic, err := derivation.NewMnemonic(entropySize(words))
				if err != nil {
					return err
				}

				pin, err := p.readNewPin(ctx, "New PIN: ")
				if err != nil {
					return err
				}

				account, err := m.CreateWallet(ctx, mnemonic, pin)
				if err != nil {
					return err
				}

				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "Mnemonic: %s\n", strings.Join(mnemonic, " "))
				fmt.Fprintf(out, "Address:  %s\n", account.Address)

				return nil
			})
		},
	}

	cmd.Flags().Bool(forceFlag, false, "replace an existing wallet")
	cmd.Flags().Int(wordsFlag, 12, "number of words: 12, 15, 18, 21 or 24")

	return cmd
}

func newImport() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Creates a wallet from an existing mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool(forceFlag)
			p := newPrompter(cmd)

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if m.HasWallet() && !force {
					return errWalletExists
				}

				phrase, err := p.readSecret(ctx, "Mnemonic: ")
				if err != nil {
					return err
				}

				pin, err := p.readNewPin(ctx, "New PIN: ")
				if err != nil {
					return err
				}

				account, err := m.ImportWallet(ctx, strings.Fields(phrase), pin)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "Address: %s\n", account.Address)

				return nil
			})
		},
	}

	cmd.Flags().Bool(forceFlag, false, "replace an existing wallet")

	return cmd
}
