package cipher_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/wallet/cipher"
	"github/chapool/pouch-wallet/internal/wallet/pinkdf"
)

func TestSuiteDecryptsEveryRegisteredCipher(t *testing.T) {
	key := pinkdf.DeriveKey("123456", testSalt)

	suite, err := cipher.NewSuite(cipher.NameAESGCM)
	require.NoError(t, err)
	assert.Equal(t, cipher.NameAESGCM, suite.Name())

	for _, c := range allCiphers() {
		ciphertext, err := c.Encrypt("secret from "+c.Name(), key)
		require.NoError(t, err)

		plaintext, err := suite.Decrypt(ciphertext, key)
		require.NoError(t, err)
		assert.Equal(t, "secret from "+c.Name(), plaintext)
	}
}

func TestSuiteEncryptsWithDefault(t *testing.T) {
	key := pinkdf.DeriveKey("123456", testSalt)

	suite, err := cipher.NewSuite(cipher.NameAESCTRHMAC)
	require.NoError(t, err)

	ciphertext, err := suite.Encrypt("secret", key)
	require.NoError(t, err)

	plaintext, err := cipher.NewAESCTRHMAC().Decrypt(ciphertext, key)
	require.NoError(t, err)
	assert.Equal(t, "secret", plaintext)
}

func TestSuiteUnknownCipher(t *testing.T) {
	_, err := cipher.NewSuite("rot13")
	require.ErrorIs(t, err, cipher.ErrUnknownCipher)

	suite, err := cipher.NewSuite(cipher.NameAESGCM)
	require.NoError(t, err)

	_, err = suite.Decrypt(`{"version":1,"cipher":"rot13","nonce":"","ciphertext":"00"}`, "key")
	require.ErrorIs(t, err, cipher.ErrDecryptionFailed)

	_, err = suite.Decrypt("garbage", "key")
	require.ErrorIs(t, err, cipher.ErrDecryptionFailed)
}
