package keystore

import (
	"errors"
	"strconv"
)

const (
	// SaltKey holds the hex encoded wallet encryption salt.
	SaltKey = "pouch_encryption_salt"

	// MnemonicKey holds the encrypted wallet mnemonic.
	MnemonicKey = "pouch_wallet_mnemonic_enc"

	// privateKeyPrefix is followed by the decimal account index.
	privateKeyPrefix = "pouch_pk_enc_"

	// SaltLength is the number of random bytes in a salt (256 bits).
	SaltLength = 32
)

var (
	// ErrSecretNotFound is returned when no secret is stored under a name.
	ErrSecretNotFound = errors.New("secret not found")

	// ErrMissingSecretName is returned for an empty secret name.
	ErrMissingSecretName = errors.New("missing secret name")

	// ErrMissingSecretValue is returned when asked to store an empty value.
	ErrMissingSecretValue = errors.New("missing secret value")
)

// PrivateKeyName returns the secret name of the encrypted private key of the
// account at index.
func PrivateKeyName(index int) string {
	return privateKeyPrefix + strconv.Itoa(index)
}
