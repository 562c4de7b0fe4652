package cipher

import (
	"crypto/aes"
	stdcipher "crypto/cipher"
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"github/chapool/pouch-wallet/internal/util"
)

const (
	// NameAESCTRHMAC identifies AES-128-CTR envelopes authenticated with HMAC-SHA256
	// (encrypt-then-MAC, keystore v3 layout).
	NameAESCTRHMAC = "aes-128-ctr-hmac-sha256"

	ctrEncKeyLength = 16
	ctrMACKeyLength = 32
	ctrIVLength     = aes.BlockSize
	ctrInfo         = "pouch/cipher/aes-128-ctr-hmac-sha256"
)

type aesCTRHMAC struct {
	rand io.Reader
}

// NewAESCTRHMAC returns the AES-128-CTR + HMAC-SHA256 cipher.
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewAESCTRHMAC() Cipher {
	return &aesCTRHMAC{rand: rand.Reader}
}

func (c *aesCTRHMAC) Name() string {
	return NameAESCTRHMAC
}

//nolint:varnamelen // iv is a common abbreviation for initialization vector
func (c *aesCTRHMAC) Encrypt(plaintext string, key string) (string, error) {
	if err := validateEncrypt(plaintext, key); err != nil {
		return "", err
	}

	encKey, macKey, err := splitKey(key)
	if err != nil {
		return "", err
	}
	defer util.ZeroBytes(encKey)
	defer util.ZeroBytes(macKey)

	iv := make([]byte, ctrIVLength)
	if _, err := io.ReadFull(c.rand, iv); err != nil {
		return "", errors.Wrap(err, "failed to generate IV")
	}

	ciphertext, err := xorAES128CTR(encKey, iv, []byte(plaintext))
	if err != nil {
		return "", err
	}

	return envelope{
		Version:    envelopeVersion,
		Cipher:     NameAESCTRHMAC,
		Nonce:      hex.EncodeToString(iv),
		Ciphertext: hex.EncodeToString(ciphertext),
		MAC:        hex.EncodeToString(calculateMAC(macKey, iv, ciphertext)),
	}.marshal()
}

//nolint:varnamelen // iv is a common abbreviation for initialization vector
func (c *aesCTRHMAC) Decrypt(ciphertext string, key string) (string, error) {
	e, err := parseEnvelope(ciphertext)
	if err != nil || e.Cipher != NameAESCTRHMAC || len(key) == 0 {
		return "", ErrDecryptionFailed
	}

	iv, err := hex.DecodeString(e.Nonce)
	if err != nil || len(iv) != ctrIVLength {
		return "", ErrDecryptionFailed
	}

	data, err := hex.DecodeString(e.Ciphertext)
	if err != nil || len(data) == 0 {
		return "", ErrDecryptionFailed
	}

	expectedMAC, err := hex.DecodeString(e.MAC)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	encKey, macKey, err := splitKey(key)
	if err != nil {
		return "", ErrDecryptionFailed
	}
	defer util.ZeroBytes(encKey)
	defer util.ZeroBytes(macKey)

	if !hmac.Equal(calculateMAC(macKey, iv, data), expectedMAC) {
		return "", ErrDecryptionFailed
	}

	plaintext, err := xorAES128CTR(encKey, iv, data)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// splitKey expands key into the AES key and the MAC key.
func splitKey(key string) ([]byte, []byte, error) {
	derived, err := expandKey(key, ctrInfo, ctrEncKeyLength+ctrMACKeyLength)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to expand key")
	}

	return derived[:ctrEncKeyLength], derived[ctrEncKeyLength:], nil
}

// xorAES128CTR encrypts or decrypts data, CTR mode is symmetric.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func xorAES128CTR(key []byte, iv []byte, data []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create cipher")
	}

	out := make([]byte, len(data))
	stream := stdcipher.NewCTR(block, iv)
	stream.XORKeyStream(out, data)

	return out, nil
}

// calculateMAC authenticates the cipher name, IV and ciphertext.
//
//nolint:varnamelen // iv is a common abbreviation for initialization vector
func calculateMAC(key []byte, iv []byte, ciphertext []byte) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(NameAESCTRHMAC))
	mac.Write(iv)
	mac.Write(ciphertext)

	return mac.Sum(nil)
}
