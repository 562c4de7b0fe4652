package wallet

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/pkg/errors"
	"github/chapool/pouch-wallet/internal/util"
	"github/chapool/pouch-wallet/internal/wallet/pinkdf"
)

// loadState reads the persisted snapshot from the metadata store. A store
// without the has-wallet flag is an empty wallet, whatever else it holds.
func (m *Manager) loadState(ctx context.Context) (*walletState, error) {
	log := util.LogFromContext(ctx)

	flag, ok, err := m.meta.Get(ctx, HasWalletKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read wallet flag")
	}

	if !ok || flag != hasWalletValue {
		return &walletState{}, nil
	}

	state := &walletState{
		hasWallet:  true,
		kdfVersion: pinkdf.V1,
	}

	raw, ok, err := m.meta.Get(ctx, AccountsKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read accounts")
	}
	if ok && raw != "" {
		if err := json.Unmarshal([]byte(raw), &state.accounts); err != nil {
			return nil, errors.Wrap(err, "failed to decode accounts")
		}
	}

	raw, ok, err = m.meta.Get(ctx, SelectedAccountKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read selected account")
	}
	if ok {
		if selected, err := strconv.Atoi(raw); err == nil {
			state.selected = selected
		}
	}

	if _, found := state.account(state.selected); !found {
		log.Warn().Int("selected", state.selected).Int("accounts", len(state.accounts)).
			Msg("Persisted account selection out of range, selecting first account")
		state.selected = 0
	}

	raw, ok, err = m.meta.Get(ctx, KdfVersionKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read kdf version")
	}
	if ok {
		v, err := strconv.Atoi(raw)
		if err != nil || pinkdf.Rounds(pinkdf.Version(v)) == 0 {
			return nil, errors.Wrapf(pinkdf.ErrKdf, "unsupported persisted kdf version %q", raw)
		}
		state.kdfVersion = pinkdf.Version(v)
	}

	raw, ok, err = m.meta.Get(ctx, WalletIDKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read wallet id")
	}
	if ok {
		state.walletID = raw
	}

	return state, nil
}

// persistState writes every metadata entry of state in one atomic batch.
func (m *Manager) persistState(ctx context.Context, state *walletState) error {
	accounts, err := json.Marshal(state.accounts)
	if err != nil {
		return errors.Wrap(err, "failed to encode accounts")
	}

	entries := map[string]string{
		AccountsKey:        string(accounts),
		SelectedAccountKey: strconv.Itoa(state.selected),
		KdfVersionKey:      strconv.Itoa(int(state.kdfVersion)),
		HasWalletKey:       hasWalletValue,
	}
	if state.walletID != "" {
		entries[WalletIDKey] = state.walletID
	}

	if err := m.meta.SetMany(ctx, entries); err != nil {
		return errors.Wrap(err, "failed to persist wallet metadata")
	}

	return nil
}
