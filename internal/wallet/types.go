package wallet

import (
	"github/chapool/pouch-wallet/internal/wallet/pinkdf"
)

// Metadata keys in the plain store. None of them hold sensitive data.
const (
	HasWalletKey       = "@pouch/has_wallet"
	AccountsKey        = "@pouch/accounts"
	SelectedAccountKey = "@pouch/selected_account"
	KdfVersionKey      = "@pouch/kdf_version"
	WalletIDKey        = "@pouch/wallet_id"
)

const hasWalletValue = "true"

// Account is one address derived from the wallet mnemonic.
type Account struct {
	Index   int    `json:"index"`
	Name    string `json:"name"`
	Address string `json:"address"`
	Path    string `json:"path"`
}

// walletState is the in-memory snapshot; it is replaced, never mutated, once
// published.
type walletState struct {
	hasWallet  bool
	walletID   string
	kdfVersion pinkdf.Version
	accounts   []Account
	selected   int
}

func (s *walletState) clone() *walletState {
	c := *s
	c.accounts = append([]Account(nil), s.accounts...)

	return &c
}

func (s *walletState) account(index int) (Account, bool) {
	if index < 0 || index >= len(s.accounts) {
		return Account{}, false
	}

	return s.accounts[index], true
}
