package wallet

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/wallet"
)

func newAddAccount() *cobra.Command {
	return &cobra.Command{
		Use:   "add-account",
		Short: "Derives and adds the next account",
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

				account, err := m.AddAccount(ctx, pin)
				if err != nil {
					return err
				}

				fmt.Fprintf(cmd.OutOrStdout(), "%d\t%s\t%s\n", account.Index, account.Name, account.Address)

				return nil
			})
		},
	}
}

func newList() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists all accounts, the selected one is marked with *",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withManager(cmd, func(_ context.Context, m *wallet.Manager) error {
				if !m.HasWallet() {
					return wallet.ErrNoWalletExists
				}

				return printAccounts(cmd.OutOrStdout(), m)
			})
		},
	}
}

func newSelect() *cobra.Command {
	return &cobra.Command{
		Use:   "select <index>",
		Short: "Selects the account at index",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if err := m.SelectAccount(ctx, index); err != nil {
					return err
				}

				return printAccounts(cmd.OutOrStdout(), m)
			})
		},
	}
}

func newRename() *cobra.Command {
	return &cobra.Command{
		Use:   "rename <index> <name>",
		Short: "Renames the account at index",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			index, err := parseIndex(args[0])
			if err != nil {
				return err
			}

			return withManager(cmd, func(ctx context.Context, m *wallet.Manager) error {
				if err := m.RenameAccount(ctx, index, strings.Join(args[1:], " ")); err != nil {
					return err
				}

				return printAccounts(cmd.OutOrStdout(), m)
			})
		},
	}
}
