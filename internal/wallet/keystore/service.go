// Package keystore persists the wallet salt and ciphertexts in the secure
// store. It holds no key material and performs no encryption itself.
package keystore

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"io"

	"github.com/pkg/errors"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/util"
)

// Service provides access to the encrypted secret store
type Service interface {
	// SetSecret stores an encrypted value under name
	SetSecret(ctx context.Context, name string, value string) error

	// SetSecrets stores all values atomically
	SetSecrets(ctx context.Context, secrets map[string]string) error

	// GetSecret returns the value stored under name or ErrSecretNotFound
	GetSecret(ctx context.Context, name string) (string, error)

	// DeleteSecret removes name, deleting a missing secret succeeds
	DeleteSecret(ctx context.Context, name string) error

	// GetOrCreateSalt returns the wallet salt, generating and persisting one first if absent
	GetOrCreateSalt(ctx context.Context) (string, error)

	// GetSalt returns the existing wallet salt or ErrSecretNotFound
	GetSalt(ctx context.Context) (string, error)

	// DeleteSalt removes the wallet salt, making every stored secret undecryptable
	DeleteSalt(ctx context.Context) error
}

type service struct {
	kv   store.KV
	rand io.Reader
}

// NewService creates a new keystore Service on top of the secure KV
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewService(kv store.KV) Service {
	return NewServiceWithRand(kv, rand.Reader)
}

// NewServiceWithRand is NewService with an explicit entropy source for salts
//
//nolint:ireturn // Returning interface is intentional for dependency injection
func NewServiceWithRand(kv store.KV, random io.Reader) Service {
	return &service{
		kv:   kv,
		rand: random,
	}
}

// SetSecret stores an encrypted value under name
func (s *service) SetSecret(ctx context.Context, name string, value string) error {
	return s.SetSecrets(ctx, map[string]string{name: value})
}

// SetSecrets stores all values atomically
func (s *service) SetSecrets(ctx context.Context, secrets map[string]string) error {
	for name, value := range secrets {
		if name == "" {
			return ErrMissingSecretName
		}
		if value == "" {
			return ErrMissingSecretValue
		}
	}

	if err := s.kv.SetMany(ctx, secrets); err != nil {
		return errors.Wrap(err, "failed to store secrets")
	}

	return nil
}

// GetSecret returns the value stored under name or ErrSecretNotFound
func (s *service) GetSecret(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", ErrMissingSecretName
	}

	value, ok, err := s.kv.Get(ctx, name)
	if err != nil {
		return "", errors.Wrap(err, "failed to get secret")
	}

	if !ok || value == "" {
		return "", ErrSecretNotFound
	}

	return value, nil
}

// DeleteSecret removes name, deleting a missing secret succeeds
func (s *service) DeleteSecret(ctx context.Context, name string) error {
	if name == "" {
		return ErrMissingSecretName
	}

	if err := s.kv.Delete(ctx, name); err != nil {
		return errors.Wrapf(err, "failed to delete secret %s", name)
	}

	return nil
}

// GetOrCreateSalt returns the wallet salt, generating and persisting one first if absent
func (s *service) GetOrCreateSalt(ctx context.Context) (string, error) {
	salt, err := s.GetSalt(ctx)
	if err == nil {
		return salt, nil
	}

	if !errors.Is(err, ErrSecretNotFound) {
		return "", err
	}

	log := util.LogFromContext(ctx)

	raw := make([]byte, SaltLength)
	if _, err := io.ReadFull(s.rand, raw); err != nil {
		return "", errors.Wrap(err, "failed to generate salt")
	}

	salt = hex.EncodeToString(raw)
	if err := s.kv.Set(ctx, SaltKey, salt); err != nil {
		log.Error().Err(err).Msg("Failed to persist encryption salt")
		return "", errors.Wrap(err, "failed to store salt")
	}

	log.Debug().Msg("Generated new encryption salt")

	return salt, nil
}

// GetSalt returns the existing wallet salt or ErrSecretNotFound
func (s *service) GetSalt(ctx context.Context) (string, error) {
	return s.GetSecret(ctx, SaltKey)
}

// DeleteSalt removes the wallet salt, making every stored secret undecryptable
func (s *service) DeleteSalt(ctx context.Context) error {
	return s.DeleteSecret(ctx, SaltKey)
}
