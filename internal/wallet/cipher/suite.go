package cipher

import (
	"github.com/pkg/errors"
)

// Suite encrypts with one default cipher and decrypts any registered one,
// dispatching on the envelope's cipher name.
type Suite struct {
	def     Cipher
	ciphers map[string]Cipher
}

var _ Cipher = (*Suite)(nil)

// NewSuite returns a Suite encrypting with the cipher registered as defaultName.
// Both built-in ciphers are always registered, extra are added on top.
func NewSuite(defaultName string, extra ...Cipher) (*Suite, error) {
	s := &Suite{
		ciphers: make(map[string]Cipher),
	}

	for _, c := range append([]Cipher{NewAESGCM(), NewAESCTRHMAC()}, extra...) {
		s.ciphers[c.Name()] = c
	}

	def, ok := s.ciphers[defaultName]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownCipher, "%q", defaultName)
	}
	s.def = def

	return s, nil
}

// Name returns the name of the default cipher.
func (s *Suite) Name() string {
	return s.def.Name()
}

func (s *Suite) Encrypt(plaintext string, key string) (string, error) {
	return s.def.Encrypt(plaintext, key)
}

func (s *Suite) Decrypt(ciphertext string, key string) (string, error) {
	e, err := parseEnvelope(ciphertext)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	c, ok := s.ciphers[e.Cipher]
	if !ok {
		return "", ErrDecryptionFailed
	}

	return c.Decrypt(ciphertext, key)
}
