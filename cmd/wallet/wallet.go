package wallet

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/util/command"
	"github/chapool/pouch-wallet/internal/wallet"
)

func New() *cobra.Command {
	return command.NewSubcommandGroup("wallet",
		newGenerate(),
		newCreate(),
		newImport(),
		newAddAccount(),
		newList(),
		newSelect(),
		newRename(),
		newPrivateKey(),
		newMnemonic(),
		newChangePin(),
		newReset(),
	)
}

// withManager runs f against the wallet manager of the configured stores.
func withManager(cmd *cobra.Command, f func(ctx context.Context, m *wallet.Manager) error) error {
	return command.WithServer(cmd.Context(), command.ServerConfig(), func(ctx context.Context, s *api.Server) error {
		return f(ctx, s.Wallet)
	})
}

func parseIndex(arg string) (int, error) {
	index, err := strconv.Atoi(arg)
	if err != nil || index < 0 {
		return 0, fmt.Errorf("invalid account index %q", arg)
	}

	return index, nil
}

func printAccounts(out io.Writer, m *wallet.Manager) error {
	selected, _ := m.SelectedAccount()

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "\tINDEX\tNAME\tADDRESS\tPATH")

	for _, a := range m.Accounts() {
		marker := ""
		if a.Index == selected.Index {
			marker = "*"
		}
		fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s\n", marker, a.Index, a.Name, a.Address, a.Path)
	}

	return w.Flush()
}
