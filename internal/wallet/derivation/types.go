package derivation

import "errors"

var (
	// ErrInvalidMnemonic is returned when a phrase fails BIP-39 wordlist or checksum validation.
	ErrInvalidMnemonic = errors.New("invalid mnemonic")

	// ErrDerivation is returned when a key cannot be derived for the requested index or path.
	ErrDerivation = errors.New("derivation error")

	// ErrInvalidEntropySize is returned by NewMnemonic for an unsupported entropy size.
	ErrInvalidEntropySize = errors.New("entropy size must be a multiple of 32 in [128, 256]")
)

// Derived is the output of deriving one account from a mnemonic.
type Derived struct {
	// Address is the EIP-55 checksummed address, 0x-prefixed.
	Address string
	// PrivateKey is the 0x-prefixed lowercase hex encoding of the 32-byte secp256k1 key.
	PrivateKey string
	// Path is the BIP-44 path the key was derived at, e.g. m/44'/60'/0'/0/3.
	Path string
}
