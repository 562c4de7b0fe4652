// Package cipher encrypts and decrypts opaque secret strings under a key
// string produced by pinkdf. Ciphertexts are self-describing JSON envelopes
// so the algorithm can change without touching the store or the wallet
// manager.
package cipher

import (
	"crypto/sha256"
	"encoding/json"
	"errors"
	"io"

	"golang.org/x/crypto/hkdf"
)

var (
	// ErrDecryptionFailed is returned for any decryption failure: wrong key,
	// corrupted or foreign ciphertext, or an empty plaintext. Callers must treat
	// it as an authentication failure.
	ErrDecryptionFailed = errors.New("decryption failed")

	// ErrEmptyPlaintext is returned when asked to encrypt an empty string.
	ErrEmptyPlaintext = errors.New("plaintext must not be empty")

	// ErrEmptyKey is returned when asked to encrypt under an empty key.
	ErrEmptyKey = errors.New("key must not be empty")

	// ErrUnknownCipher is returned when a cipher name is not registered.
	ErrUnknownCipher = errors.New("unknown cipher")
)

// Cipher is a symmetric string cipher.
type Cipher interface {
	// Name is the identifier written into every envelope.
	Name() string

	// Encrypt returns a self-contained ciphertext for plaintext.
	Encrypt(plaintext string, key string) (string, error)

	// Decrypt returns the plaintext or ErrDecryptionFailed. It never returns an
	// empty plaintext without an error.
	Decrypt(ciphertext string, key string) (string, error)
}

const envelopeVersion = 1

// envelope is the serialized form of a ciphertext. Binary fields are hex encoded.
type envelope struct {
	Version    int    `json:"version"`
	Cipher     string `json:"cipher"`
	Nonce      string `json:"nonce"`
	Ciphertext string `json:"ciphertext"`
	MAC        string `json:"mac,omitempty"`
}

func (e envelope) marshal() (string, error) {
	b, err := json.Marshal(e)
	if err != nil {
		return "", err
	}

	return string(b), nil
}

func parseEnvelope(ciphertext string) (envelope, error) {
	var e envelope
	if err := json.Unmarshal([]byte(ciphertext), &e); err != nil {
		return envelope{}, ErrDecryptionFailed
	}

	if e.Version != envelopeVersion || e.Cipher == "" {
		return envelope{}, ErrDecryptionFailed
	}

	return e, nil
}

// expandKey derives n bytes of key material for one cipher from the key string.
func expandKey(key string, info string, n int) ([]byte, error) {
	out := make([]byte, n)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(key), nil, []byte(info)), out); err != nil {
		return nil, err
	}

	return out, nil
}

func validateEncrypt(plaintext string, key string) error {
	if len(plaintext) == 0 {
		return ErrEmptyPlaintext
	}

	if len(key) == 0 {
		return ErrEmptyKey
	}

	return nil
}
