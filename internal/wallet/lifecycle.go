package wallet

import (
	"context"
	"strconv"
	"strings"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
	"github/chapool/pouch-wallet/internal/wallet/pinkdf"
)

// CreateWallet creates a wallet from words, replacing any existing one, and
// returns its first account.
func (m *Manager) CreateWallet(ctx context.Context, words []string, pin string) (*Account, error) {
	return m.createWallet(ctx, "create_wallet", words, pin)
}

// ImportWallet is CreateWallet with an externally supplied mnemonic.
func (m *Manager) ImportWallet(ctx context.Context, words []string, pin string) (*Account, error) {
	return m.createWallet(ctx, "import_wallet", words, pin)
}

func (m *Manager) createWallet(ctx context.Context, operation string, words []string, pin string) (*Account, error) {
	var account *Account

	err := m.run(ctx, operation, func(ctx context.Context, log *zerolog.Logger) error {
		if pin == "" {
			return ErrEmptyPin
		}

		mnemonic := derivation.NormalizePhrase(strings.Join(words, " "))

		derived, err := derivation.Derive(mnemonic, 0)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		salt, err := m.secrets.GetOrCreateSalt(ctx)
		if err != nil {
			return err
		}

		key, err := pinkdf.DeriveKeyVersion(pinkdf.Current, pin, salt)
		if err != nil {
			return err
		}

		secrets, err := m.encryptSecrets(map[string]string{
			keystore.MnemonicKey:       mnemonic,
			keystore.PrivateKeyName(0): derived.PrivateKey,
		}, key)
		if err != nil {
			return err
		}

		backup, err := m.backupSecrets(ctx, secrets)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		previous := m.snapshot()
		next := &walletState{
			hasWallet:  true,
			walletID:   uuid.NewString(),
			kdfVersion: pinkdf.Current,
			accounts: []Account{{
				Index:   0,
				Name:    defaultAccountName(0),
				Address: derived.Address,
				Path:    derived.Path,
			}},
			selected: 0,
		}

		// Once secrets are written the metadata must follow.
		persistCtx := context.WithoutCancel(ctx)

		if err := m.secrets.SetSecrets(persistCtx, secrets); err != nil {
			return err
		}

		if err := m.persistState(persistCtx, next); err != nil {
			// The previous metadata still references the previous secrets.
			m.restoreSecrets(persistCtx, log, backup)
			return err
		}

		m.publish(next)

		if previous.hasWallet {
			m.removeStalePrivateKeys(persistCtx, log, previous, 1)
		}

		log.Info().Str("wallet_id", next.walletID).Int("account_index", 0).Msg("Wallet created")

		account = &next.accounts[0]

		return nil
	})

	if err != nil {
		return nil, err
	}

	a := *account

	return &a, nil
}

// secretBackup holds the ciphertexts a batch write is about to replace.
// Names listed in missing had no stored secret.
type secretBackup struct {
	ciphertexts map[string]string
	missing     []string
}

// backupSecrets reads the currently stored ciphertexts of every name in secrets.
func (m *Manager) backupSecrets(ctx context.Context, secrets map[string]string) (*secretBackup, error) {
	backup := &secretBackup{ciphertexts: make(map[string]string, len(secrets))}

	for name := range secrets {
		ciphertext, err := m.secrets.GetSecret(ctx, name)
		if err != nil {
			if errors.Is(err, keystore.ErrSecretNotFound) {
				backup.missing = append(backup.missing, name)
				continue
			}
			return nil, err
		}
		backup.ciphertexts[name] = ciphertext
	}

	return backup, nil
}

// restoreSecrets puts backup back in place after a failed metadata write.
func (m *Manager) restoreSecrets(ctx context.Context, log *zerolog.Logger, backup *secretBackup) {
	if len(backup.ciphertexts) > 0 {
		if err := m.secrets.SetSecrets(ctx, backup.ciphertexts); err != nil {
			log.Error().Err(err).Msg("Failed to restore previous secrets, wallet metadata and secrets diverged")
		}
	}

	for _, name := range backup.missing {
		if err := m.secrets.DeleteSecret(ctx, name); err != nil {
			log.Warn().Err(err).Str("secret", name).Msg("Failed to remove unreferenced secret")
		}
	}
}

// removeStalePrivateKeys deletes private keys of previous accounts from index
// from on. Failures only leave undecryptable leftovers behind and are logged.
func (m *Manager) removeStalePrivateKeys(ctx context.Context, log *zerolog.Logger, previous *walletState, from int) {
	for i := from; i < len(previous.accounts); i++ {
		if err := m.secrets.DeleteSecret(ctx, keystore.PrivateKeyName(i)); err != nil {
			log.Warn().Err(err).Int("account_index", i).Msg("Failed to remove stale private key")
		}
	}
}

// ResetWallet deletes every secret and all metadata. All deletions are
// attempted; the returned error matches ErrResetPartialFailure if any failed.
// The manager is empty afterwards in either case.
func (m *Manager) ResetWallet(ctx context.Context) error {
	return m.run(ctx, "reset_wallet", func(ctx context.Context, log *zerolog.Logger) error {
		previous := m.snapshot()
		deleteCtx := context.WithoutCancel(ctx)

		var result *multierror.Error

		// Without the flag the wallet is gone even if later deletions fail.
		if err := m.meta.Delete(deleteCtx, HasWalletKey); err != nil {
			result = multierror.Append(result, errors.Wrap(err, "failed to delete wallet flag"))
		}

		accounts := max(len(previous.accounts), 1)
		for i := range accounts {
			if err := m.secrets.DeleteSecret(deleteCtx, keystore.PrivateKeyName(i)); err != nil {
				result = multierror.Append(result, err)
			}
		}

		if err := m.secrets.DeleteSecret(deleteCtx, keystore.MnemonicKey); err != nil {
			result = multierror.Append(result, err)
		}

		if err := m.secrets.DeleteSalt(deleteCtx); err != nil {
			result = multierror.Append(result, err)
		}

		for _, key := range []string{AccountsKey, SelectedAccountKey, KdfVersionKey, WalletIDKey} {
			if err := m.meta.Delete(deleteCtx, key); err != nil {
				result = multierror.Append(result, errors.Wrapf(err, "failed to delete %s", key))
			}
		}

		m.publish(&walletState{})

		if result != nil {
			log.Error().Err(result).Str("wallet_id", previous.walletID).Msg("Wallet reset incomplete")
			return &PartialResetError{Errors: result}
		}

		log.Info().Str("wallet_id", previous.walletID).Msg("Wallet reset")

		return nil
	})
}

// ChangePin re-encrypts the mnemonic and every private key under newPin and
// writes them in one batch.
func (m *Manager) ChangePin(ctx context.Context, oldPin string, newPin string) error {
	return m.run(ctx, "change_pin", func(ctx context.Context, log *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		if newPin == "" {
			return ErrEmptyPin
		}

		oldKey, err := m.unlock(ctx, state, oldPin)
		if err != nil {
			return err
		}

		names := []string{keystore.MnemonicKey}
		for _, a := range state.accounts {
			names = append(names, keystore.PrivateKeyName(a.Index))
		}

		plaintexts := make(map[string]string, len(names))
		for _, name := range names {
			plaintext, err := m.decryptSecret(ctx, name, oldKey)
			if err != nil {
				return err
			}
			plaintexts[name] = plaintext
		}

		salt, err := m.secrets.GetSalt(ctx)
		if err != nil {
			return err
		}

		newKey, err := pinkdf.DeriveKeyVersion(pinkdf.Current, newPin, salt)
		if err != nil {
			return err
		}

		secrets, err := m.encryptSecrets(plaintexts, newKey)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		persistCtx := context.WithoutCancel(ctx)

		if err := m.secrets.SetSecrets(persistCtx, secrets); err != nil {
			return err
		}

		if state.kdfVersion != pinkdf.Current {
			next := state.clone()
			next.kdfVersion = pinkdf.Current

			if err := m.persistState(persistCtx, next); err != nil {
				return err
			}

			m.publish(next)
		}

		log.Info().Str("wallet_id", state.walletID).Int("secrets", len(secrets)).Msg("PIN changed")

		return nil
	})
}

func defaultAccountName(index int) string {
	return "Account " + strconv.Itoa(index+1)
}
