package wallet

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/wallet"
)

func newPrivateKey() *cobra.Command {
	return &cobra.Command{
		Use:   "private-key",
		Short: "Prints the private key of the selected account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if !m.HasWallet() {
					return wallet.ErrNoWalletExists
				}

				pin, err := p.readPin(ctx)
				if err != nil {
					return err
				}

				privateKey, err := m.PrivateKey(ctx, pin)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), privateKey)

				return nil
			})
		},
	}
}

func newMnemonic() *cobra.Command {
	return &cobra.Command{
		Use:   "mnemonic",
		Short: "Prints the wallet mnemonic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if !m.HasWallet() {
					return wallet.ErrNoWalletExists
				}

				pin, err := p.readPin(ctx)
				if err != nil {
					return err
				}

				mnemonic, err := m.Mnemonic(ctx, pin)
				if err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), mnemonic)

				return nil
			})
		},
	}
}

func newChangePin() *cobra.Command {
	return &cobra.Command{
		Use:   "change-pin",
		Short: "Re-encrypts all wallet secrets under a new PIN",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p := newPrompter(cmd)

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if !m.HasWallet() {
					return wallet.ErrNoWalletExists
				}

				oldPin, err := p.readSecret(ctx, "Current PIN: ")
				if err != nil {
					return err
				}

				newPin, err := p.readNewPin(ctx, "New PIN: ")
				if err != nil {
					return err
				}

				if err := m.ChangePin(ctx, oldPin, newPin); err != nil {
					return err
				}

				fmt.Fprintln(cmd.OutOrStdout(), "PIN changed.")

				return nil
			})
		},
	}
}
