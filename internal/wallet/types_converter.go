package wallet

import (
	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/swag"
	"github/chapool/pouch-wallet/internal/types"
)

// ToWalletAccount converts Account to WalletAccount
func (a Account) ToWalletAccount() *types.WalletAccount {
	return &types.WalletAccount{
		Index:   swag.Int64(int64(a.Index)),
		Name:    swag.String(a.Name),
		Address: swag.String(a.Address),
		Path:    swag.String(a.Path),
	}
}

// ToGetWalletResponse converts the current snapshot of m to GetWalletResponse
func (m *Manager) ToGetWalletResponse() *types.GetWalletResponse {
	s := m.snapshot()

	accounts := make([]*types.WalletAccount, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a.ToWalletAccount())
	}

	res := &types.GetWalletResponse{
		HasWallet:     swag.Bool(s.hasWallet),
		WalletID:      strfmt.UUID(s.walletID),
		SelectedIndex: swag.Int64(0),
		Accounts:      accounts,
	}

	if selected, ok := s.account(s.selected); ok && s.hasWallet {
		res.SelectedIndex = swag.Int64(int64(selected.Index))
		res.Address = selected.Address
	}

	return res
}

// ToPostPrivateKeyResponse pairs the unlocked account with its private key
func (a Account) ToPostPrivateKeyResponse(privateKey string) *types.PostPrivateKeyResponse {
	return &types.PostPrivateKeyResponse{
		Address:    swag.String(a.Address),
		PrivateKey: swag.String(privateKey),
	}
}
