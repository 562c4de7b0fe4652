package wallet

import (
	"context"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
	"github/chapool/pouch-wallet/internal/wallet/pinkdf"
)

// PrivateKey decrypts the private key of the selected account.
func (m *Manager) PrivateKey(ctx context.Context, pin string) (string, error) {
	_, privateKey, err := m.UnlockSelectedAccount(ctx, pin)
	return privateKey, err
}

// UnlockSelectedAccount returns the selected account together with its
// decrypted private key. Both are read within the same operation, so a
// concurrent SelectAccount cannot pair the key with another address.
func (m *Manager) UnlockSelectedAccount(ctx context.Context, pin string) (Account, string, error) {
	var (
		account    Account
		privateKey string
	)

	err := m.run(ctx, "private_key", func(ctx context.Context, _ *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		selected, ok := state.account(state.selected)
		if !ok {
			return ErrAccountNotFound
		}

		key, err := m.unlock(ctx, state, pin)
		if err != nil {
			return err
		}

		privateKey, err = m.decryptSecret(ctx, keystore.PrivateKeyName(selected.Index), key)
		if err != nil {
			return err
		}

		account = selected

		return nil
	})
	if err != nil {
		return Account{}, "", err
	}

	return account, privateKey, nil
}

// Mnemonic decrypts the wallet mnemonic.
func (m *Manager) Mnemonic(ctx context.Context, pin string) (string, error) {
	var mnemonic string

	err := m.run(ctx, "mnemonic", func(ctx context.Context, _ *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		key, err := m.unlock(ctx, state, pin)
		if err != nil {
			return err
		}

		mnemonic, err = m.decryptSecret(ctx, keystore.MnemonicKey, key)

		return err
	})

	return mnemonic, err
}

// unlock derives the encryption key of state's wallet from pin.
func (m *Manager) unlock(ctx context.Context, state *walletState, pin string) (string, error) {
	if pin == "" {
		return "", ErrEmptyPin
	}

	if err := ctx.Err(); err != nil {
		return "", err
	}

	salt, err := m.secrets.GetSalt(ctx)
	if err != nil {
		if errors.Is(err, keystore.ErrSecretNotFound) {
			return "", ErrNoWalletExists
		}
		return "", err
	}

	return pinkdf.DeriveKeyVersion(state.kdfVersion, pin, salt)
}

// decryptSecret loads and decrypts the secret stored under name.
func (m *Manager) decryptSecret(ctx context.Context, name string, key string) (string, error) {
	ciphertext, err := m.secrets.GetSecret(ctx, name)
	if err != nil {
		if errors.Is(err, keystore.ErrSecretNotFound) {
			return "", ErrNoWalletExists
		}
		return "", err
	}

	plaintext, err := m.cipher.Decrypt(ciphertext, key)
	if err != nil {
		// An abandoned PIN entry is not a wrong PIN.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return "", ctxErr
		}
		return "", ErrWrongPin
	}

	return plaintext, nil
}

// encryptSecrets encrypts every plaintext in secrets under key.
func (m *Manager) encryptSecrets(secrets map[string]string, key string) (map[string]string, error) {
	out := make(map[string]string, len(secrets))

	for name, plaintext := range secrets {
		ciphertext, err := m.cipher.Encrypt(plaintext, key)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to encrypt %s", name)
		}
		out[name] = ciphertext
	}

	return out, nil
}
