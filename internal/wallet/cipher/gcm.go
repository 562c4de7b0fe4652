package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"github/chapool/pouch-wallet/internal/util"
)

const (
	// NameAESGCM identifies AES-256-GCM envelopes.
	NameAESGCM = "aes-256-gcm"

	gcmKeyLength = 32
	gcmInfo      = "pouch/cipher/aes-256-gcm"
)

type aesGCM struct {
	rand io.Reader
}

// NewAESGCM returns the authenticated AES-256-GCM cipher.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewAESGCM() Cipher {
	return &aesGCM{rand: rand.Reader}
}

func (c *aesGCM) Name() string {
	return NameAESGCM
}

func (c *aesGCM) Encrypt(plaintext string, key string) (string, error) {
	if err := validateEncrypt(plaintext, key); err != nil {
		return "", err
	}

	gcm, err := c.aead(key)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(c.rand, nonce); err != nil {
		return "", errors.Wrap(err, "failed to generate nonce")
	}

	sealed := gcm.Seal(nil, nonce, []byte(plaintext), []byte(NameAESGCM))

	return envelope{
		Version:    envelopeVersion,
		Cipher:     NameAESGCM,
		Nonce:      hex.EncodeToString(nonce),
		Ciphertext: hex.EncodeToString(sealed),
	}.marshal()
}

func (c *aesGCM) Decrypt(ciphertext string, key string) (string, error) {
	e, err := parseEnvelope(ciphertext)
	if err != nil || e.Cipher != NameAESGCM || len(key) == 0 {
		return "", ErrDecryptionFailed
	}

	nonce, err := hex.DecodeString(e.Nonce)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	sealed, err := hex.DecodeString(e.Ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	gcm, err := c.aead(key)
	if err != nil || len(nonce) != gcm.NonceSize() {
		return "", ErrDecryptionFailed
	}

	plaintext, err := gcm.Open(nil, nonce, sealed, []byte(NameAESGCM))
	if err != nil || len(plaintext) == 0 {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

func (c *aesGCM) aead(key string) (stdcipher.AEAD, error) {
	aesKey, err := expandKey(key, gcmInfo, gcmKeyLength)
	if err != nil {
		return nil, errors.Wrap(err, "failed to expand key")
	}
	defer util.ZeroBytes(aesKey)

	block, err := aes.NewCipher(aesKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	gcm, err := stdcipher.NewGCM(block)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create GCM")
	}

	return gcm, nil
}
