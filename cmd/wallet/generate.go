package wallet

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

const wordsFlag = "words"

func newGenerate() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Prints a new random mnemonic without storing it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			words, _ := cmd.Flags().GetInt(wordsFlag)

			mnemonic, err := derivation.NewMnemonic(entropySize(words))
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(mnemonic, " "))

			return nil
		},
	}

	cmd.Flags().Int(wordsFlag, 12, "number of words: 12, 15, 18, 21 or 24")

	return cmd
}

// entropySize returns the BIP-39 entropy bits for a phrase of n words.
func entropySize(n int) int {
	return n * 32 / 3
}
