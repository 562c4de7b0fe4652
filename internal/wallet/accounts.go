package wallet

import (
	"context"
	"strings"

	"github.com/rs/zerolog"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
)

// AddAccount derives the account at the next index and appends it. The
// selection is left unchanged.
func (m *Manager) AddAccount(ctx context.Context, pin string) (*Account, error) {
	var account Account

	err := m.run(ctx, "add_account", func(ctx context.Context, log *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		key, err := m.unlock(ctx, state, pin)
		if err != nil {
			return err
		}

		mnemonic, err := m.decryptSecret(ctx, keystore.MnemonicKey, key)
		if err != nil {
			return err
		}

		index := len(state.accounts)

		derived, err := derivation.Derive(mnemonic, index)
		if err != nil {
			return err
		}

		ciphertext, err := m.cipher.Encrypt(derived.PrivateKey, key)
		if err != nil {
			return err
		}

		if err := ctx.Err(); err != nil {
			return err
		}

		account = Account{
			Index:   index,
			Name:    defaultAccountName(index),
			Address: derived.Address,
			Path:    derived.Path,
		}

		next := state.clone()
		next.accounts = append(next.accounts, account)

		persistCtx := context.WithoutCancel(ctx)

		if err := m.secrets.SetSecret(persistCtx, keystore.PrivateKeyName(index), ciphertext); err != nil {
			return err
		}

		if err := m.persistState(persistCtx, next); err != nil {
			return err
		}

		m.publish(next)

		log.Info().Str("wallet_id", state.walletID).Int("account_index", index).Msg("Account added")

		return nil
	})

	if err != nil {
		return nil, err
	}

	return &account, nil
}

// SelectAccount makes the account at index the selected one.
func (m *Manager) SelectAccount(ctx context.Context, index int) error {
	return m.run(ctx, "select_account", func(ctx context.Context, log *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		if _, ok := state.account(index); !ok {
			return ErrAccountNotFound
		}

		if state.selected == index {
			return nil
		}

		next := state.clone()
		next.selected = index

		if err := m.persistState(ctx, next); err != nil {
			return err
		}

		m.publish(next)

		log.Debug().Str("wallet_id", state.walletID).Int("account_index", index).Msg("Account selected")

		return nil
	})
}

// RenameAccount changes the name of the account at index. Leading and
// trailing whitespace is dropped, a blank name is rejected.
func (m *Manager) RenameAccount(ctx context.Context, index int, name string) error {
	return m.run(ctx, "rename_account", func(ctx context.Context, log *zerolog.Logger) error {
		state, err := m.requireWallet()
		if err != nil {
			return err
		}

		if _, ok := state.account(index); !ok {
			return ErrAccountNotFound
		}

		name = strings.TrimSpace(name)
		if name == "" {
			return ErrInvalidAccountName
		}

		next := state.clone()
		next.accounts[index].Name = name

		if err := m.persistState(ctx, next); err != nil {
			return err
		}

		m.publish(next)

		log.Debug().Str("wallet_id", state.walletID).Int("account_index", index).Msg("Account renamed")

		return nil
	})
}
