package test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/metrics"
	"github/chapool/pouch-wallet/internal/store"
	"github/chapool/pouch-wallet/internal/wallet"
	"github/chapool/pouch-wallet/internal/wallet/cipher"
	"github/chapool/pouch-wallet/internal/wallet/keystore"
)

const (
	// Mnemonic is the well known BIP-39 test phrase.
	Mnemonic = "abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon abandon about"

	// Account0Address and Account0PrivateKey are derived from Mnemonic at m/44'/60'/0'/0/0.
	Account0Address    = "0x9858EfFD232B4033E47d90003D41EC34EcaEda94"
	Account0PrivateKey = "0x1ab42cc412b618bdea3a599e3c9bae199ebf030895b039e9db1e30dafb12b727"

	Pin      = "123456"
	WrongPin = "000000"
)

// Stores are the backends of a test manager. Both are wrapped so tests can
// inject storage failures.
type Stores struct {
	Secure *FaultyKV
	Meta   *FaultyKV
}

// WithTestManager runs closure with a manager on fresh in-memory stores.
func WithTestManager(t *testing.T, closure func(m *wallet.Manager, stores *Stores)) {
	t.Helper()

	WithTestManagerConfig(t, config.Wallet{Cipher: config.CipherAESGCM}, closure)
}

// WithTestManagerConfig is WithTestManager with an explicit wallet config.
func WithTestManagerConfig(t *testing.T, cfg config.Wallet, closure func(m *wallet.Manager, stores *Stores)) {
	t.Helper()

	stores := &Stores{
		Secure: NewFaultyKV(store.NewMemory()),
		Meta:   NewFaultyKV(store.NewMemory()),
	}

	closure(NewTestManager(t, cfg, stores), stores)
}

// NewTestManager builds a manager on stores, loading whatever they hold.
func NewTestManager(t *testing.T, cfg config.Wallet, stores *Stores) *wallet.Manager {
	t.Helper()

	c, err := cipher.NewSuite(cfg.Cipher)
	require.NoError(t, err)

	m, err := wallet.NewManager(t.Context(), keystore.NewService(stores.Secure), stores.Meta, c, cfg, (*metrics.Service)(nil))
	require.NoError(t, err)

	return m
}

