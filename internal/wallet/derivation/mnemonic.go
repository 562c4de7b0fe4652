package derivation

import (
	"strings"

	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip39"
)

// DefaultEntropySize yields a 12 word phrase.
const DefaultEntropySize = 128

// NewMnemonic returns a new random mnemonic as a list of words. An entropy
// size of 0 uses DefaultEntropySize.
func NewMnemonic(entropySize int) ([]string, error) {
	if entropySize == 0 {
		entropySize = DefaultEntropySize
	}

	if entropySize < 128 || entropySize > 256 || entropySize%32 != 0 {
		return nil, ErrInvalidEntropySize
	}

	entropy, err := bip39.NewEntropy(entropySize)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate entropy")
	}

	mnemonic, err := bip39.NewMnemonic(entropy)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate mnemonic")
	}

	return strings.Split(mnemonic, " "), nil
}

// IsMnemonicValid reports whether words form a valid BIP-39 phrase.
func IsMnemonicValid(words []string) bool {
	phrase := NormalizePhrase(strings.Join(words, " "))
	return phrase != "" && bip39.IsMnemonicValid(phrase)
}
