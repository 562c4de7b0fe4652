// Package derivation derives EVM accounts from a BIP-39 mnemonic along
// m/44'/60'/0'/0/{index}. Everything in here is pure and safe for concurrent use.
package derivation

import (
	"crypto/ecdsa"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/pkg/errors"
	"github.com/tyler-smith/go-bip32"
	"github.com/tyler-smith/go-bip39"
	"github/chapool/pouch-wallet/internal/util"
)

const privateKeyLength = 32

// Derive returns the address, private key and path of the account at index.
func Derive(phrase string, index int) (*Derived, error) {
	path, err := AccountPath(index)
	if err != nil {
		return nil, err
	}

	seed, err := seedFromPhrase(phrase)
	if err != nil {
		return nil, err
	}
	defer util.ZeroBytes(seed)

	privateKey, err := derivePrivateKey(seed, path)
	if err != nil {
		return nil, err
	}
	defer util.ZeroBytes(privateKey)

	ecdsaPrivateKey, err := crypto.ToECDSA(privateKey)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "failed to convert to ECDSA private key: %v", err)
	}

	publicKeyECDSA, ok := ecdsaPrivateKey.Public().(*ecdsa.PublicKey)
	if !ok {
		return nil, errors.Wrap(ErrDerivation, "failed to cast public key to ECDSA")
	}

	return &Derived{
		Address:    crypto.PubkeyToAddress(*publicKeyECDSA).Hex(),
		PrivateKey: hexutil.Encode(privateKey),
		Path:       path.String(),
	}, nil
}

// NormalizePhrase collapses all whitespace runs to single spaces.
func NormalizePhrase(phrase string) string {
	return strings.Join(strings.Fields(phrase), " ")
}

func seedFromPhrase(phrase string) ([]byte, error) {
	phrase = NormalizePhrase(phrase)
	if phrase == "" || !bip39.IsMnemonicValid(phrase) {
		return nil, ErrInvalidMnemonic
	}

	seed, err := bip39.NewSeedWithErrorChecking(phrase, "")
	if err != nil {
		return nil, errors.Wrapf(ErrInvalidMnemonic, "%v", err)
	}

	return seed, nil
}

// derivePrivateKey walks path from the BIP-32 master key of seed.
// WARNING: Caller must clear the returned key after use
func derivePrivateKey(seed []byte, path DerivationPath) ([]byte, error) {
	key, err := bip32.NewMasterKey(seed)
	if err != nil {
		return nil, errors.Wrapf(ErrDerivation, "failed to create master key: %v", err)
	}

	for _, index := range path {
		key, err = key.NewChildKey(index)
		if err != nil {
			return nil, errors.Wrapf(ErrDerivation, "failed to derive child key at index %d: %v", index, err)
		}
	}

	return common.LeftPadBytes(key.Key, privateKeyLength), nil
}
