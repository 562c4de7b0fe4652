// Package wallet implements the wallet and account lifecycle on top of the
// derivation, pinkdf, cipher and keystore packages.
//
// The Manager is the only writer of wallet secrets and metadata. Mutating
// operations are serialized; reads of the snapshot never block on them.
package wallet

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/metrics"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/util"
	"github/chapool/pouch-wallet/internal/wallet/cipher"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
)

type Manager struct {
	secrets keystore.Service
	meta    store.KV
	cipher  cipher.Cipher
	metrics *metrics.Service

	rejectConcurrent bool

	// sem holds one token while an operation runs.
	sem chan struct{}

	mu    sync.RWMutex
	state *walletState
}

// NewManager returns a Manager with the state persisted in meta loaded.
func NewManager(
	ctx context.Context,
	secrets keystore.Service,
	meta store.KV,
	c cipher.Cipher,
	cfg config.Wallet,
	m *metrics.Service,
) (*Manager, error) {
	manager := &Manager{
		secrets:          secrets,
		meta:             meta,
		cipher:           c,
		metrics:          m,
		rejectConcurrent: cfg.RejectConcurrent,
		sem:              make(chan struct{}, 1),
	}

	state, err := manager.loadState(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wallet state")
	}

	manager.publish(state)

	util.LogFromContext(ctx).Debug().
		Bool("has_wallet", state.hasWallet).
		Str("wallet_id", state.walletID).
		Int("accounts", len(state.accounts)).
		Msg("Loaded wallet state")

	return manager, nil
}

// HasWallet reports whether a wallet exists.
func (m *Manager) HasWallet() bool {
	return m.snapshot().hasWallet
}

// Accounts returns a copy of all accounts in index order.
func (m *Manager) Accounts() []Account {
	return m.snapshot().clone().accounts
}

// SelectedAccount returns the selected account, false without a wallet.
func (m *Manager) SelectedAccount() (Account, bool) {
	s := m.snapshot()
	if !s.hasWallet {
		return Account{}, false
	}

	return s.account(s.selected)
}

// WalletAddress returns the address of the selected account or "".
func (m *Manager) WalletAddress() string {
	a, _ := m.SelectedAccount()
	return a.Address
}

// WalletID returns the random identifier assigned at wallet creation or "".
func (m *Manager) WalletID() string {
	return m.snapshot().walletID
}

func (m *Manager) snapshot() *walletState {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.state
}

func (m *Manager) publish(state *walletState) {
	m.mu.Lock()
	m.state = state
	m.mu.Unlock()

	m.metrics.SetAccounts(len(state.accounts))
}

func (m *Manager) acquire(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if m.rejectConcurrent {
		select {
		case m.sem <- struct{}{}:
			return nil
		default:
			return ErrOperationInProgress
		}
	}

	select {
	case m.sem <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (m *Manager) release() {
	<-m.sem
}

// run executes fn as the only running operation and records its outcome.
func (m *Manager) run(ctx context.Context, operation string, fn func(ctx context.Context, log *zerolog.Logger) error) error {
	err := m.acquire(ctx)
	if err == nil {
		err = m.runAcquired(ctx, operation, fn)
	}

	m.metrics.ObserveOperation(operation, err)

	return err
}

// runAcquired runs fn while holding the operation slot. The slot is released
// even if fn panics.
func (m *Manager) runAcquired(ctx context.Context, operation string, fn func(ctx context.Context, log *zerolog.Logger) error) error {
	defer m.release()

	l := util.LogFromContext(ctx).With().Str("operation", operation).Logger()

	return fn(l.WithContext(ctx), &l)
}

// requireWallet returns the current snapshot or ErrNoWalletExists.
func (m *Manager) requireWallet() (*walletState, error) {
	s := m.snapshot()
	if !s.hasWallet {
		return nil, ErrNoWalletExists
	}

	return s, nil
}
