package wallet_test

import (
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/go-openapi/swag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/httperrors"
	"github/chapool/pouch-wallet/internal/test"
	"github/chapool/pouch-wallet/internal/types"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

func createWallet(t *testing.T, s *api.Server) {
	t.Helper()

	res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/import", types.PostImportWalletPayload{
		Mnemonic: strings.Fields(test.Mnemonic),
		Pin:      swag.String(test.Pin),
	}, nil)
	require.Equal(t, http.StatusCreated, res.Result().StatusCode, res.Body.String())
}

func TestWalletLifecycle(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "GET", "/api/v1/wallet", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var snapshot types.GetWalletResponse
		test.ParseResponseAndValidate(t, res, &snapshot)
		assert.False(t, swag.BoolValue(snapshot.HasWallet))
		assert.Empty(t, snapshot.Accounts)

		createWallet(t, s)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts", types.PinPayload{Pin: swag.String(test.Pin)}, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "PUT", "/api/v1/wallet/accounts/1/name", types.PutRenameAccountPayload{Name: swag.String("Savings")}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/1/select", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		test.ParseResponseAndValidate(t, res, &snapshot)
		assert.True(t, swag.BoolValue(snapshot.HasWallet))
		assert.Equal(t, int64(1), swag.Int64Value(snapshot.SelectedIndex))
		require.Len(t, snapshot.Accounts, 2)
		assert.Equal(t, "Account 1", swag.StringValue(snapshot.Accounts[0].Name))
		assert.Equal(t, "Savings", swag.StringValue(snapshot.Accounts[1].Name))
		assert.Equal(t, swag.StringValue(snapshot.Accounts[1].Address), snapshot.Address)
		assert.Equal(t, s.Wallet.WalletID(), snapshot.WalletID.String())

		expected, err := derivation.Derive(test.Mnemonic, 1)
		require.NoError(t, err)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/private-key", types.PinPayload{Pin: swag.String(test.Pin)}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)
		assert.Equal(t, "no-store", res.Header().Get("Cache-Control"))

		var privateKey types.PostPrivateKeyResponse
		test.ParseResponseAndValidate(t, res, &privateKey)
		assert.Equal(t, expected.PrivateKey, swag.StringValue(privateKey.PrivateKey))
		assert.Equal(t, expected.Address, swag.StringValue(privateKey.Address))

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/pin", types.PostChangePinPayload{OldPin: swag.String(test.Pin), NewPin: swag.String("24680")}, nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/mnemonic", types.PinPayload{Pin: swag.String("24680")}, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		var mnemonic types.PostMnemonicResponse
		test.ParseResponseAndValidate(t, res, &mnemonic)
		assert.Equal(t, test.Mnemonic, swag.StringValue(mnemonic.Mnemonic))

		res = test.PerformRequest(t, s, "DELETE", "/api/v1/wallet", nil, nil)
		require.Equal(t, http.StatusNoContent, res.Result().StatusCode)

		assert.False(t, s.Wallet.HasWallet())
	})
}

func TestCreateWalletGeneratesMnemonic(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet", types.PostCreateWalletPayload{Pin: swag.String(test.Pin)}, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		var created types.PostCreateWalletResponse
		test.ParseResponseAndValidate(t, res, &created)

		require.Len(t, created.Mnemonic, 12)
		assert.True(t, derivation.IsMnemonicValid(created.Mnemonic))

		expected, err := derivation.Derive(strings.Join(created.Mnemonic, " "), 0)
		require.NoError(t, err)
		require.NotNil(t, created.Account)
		assert.Equal(t, expected.Address, swag.StringValue(created.Account.Address))
	})
}

func TestErrorStatusMapping(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		tests := []struct {
			name      string
			method    string
			path      string
			body      any
			status    int
			errorType string
		}{
			{"no wallet", "POST", "/api/v1/wallet/private-key", types.PinPayload{Pin: swag.String(test.Pin)}, http.StatusNotFound, httperrors.TypeNoWallet},
			{"invalid mnemonic", "POST", "/api/v1/wallet/import", types.PostImportWalletPayload{Mnemonic: []string{"test", "mnemonic"}, Pin: swag.String(test.Pin)}, http.StatusBadRequest, httperrors.TypeInvalidMnemonic},
			{"empty pin", "POST", "/api/v1/wallet/import", types.PostImportWalletPayload{Mnemonic: strings.Fields(test.Mnemonic), Pin: swag.String("")}, http.StatusBadRequest, httperrors.TypeEmptyPin},
			{"malformed body", "POST", "/api/v1/wallet/import", []byte("{"), http.StatusBadRequest, httperrors.TypeMalformedBody},
			{"invalid index", "POST", "/api/v1/wallet/accounts/abc/select", nil, http.StatusBadRequest, httperrors.TypeInvalidIndex},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, tt.method, tt.path, tt.body, nil)
				require.Equal(t, tt.status, res.Result().StatusCode, res.Body.String())

				var body httperrors.HTTPError
				test.ParseResponseBody(t, res, &body)
				assert.Equal(t, tt.status, body.Code)
				assert.Equal(t, tt.errorType, body.Type)
			})
		}

		createWallet(t, s)

		tests = []struct {
			name      string
			method    string
			path      string
			body      any
			status    int
			errorType string
		}{
			{"wrong pin", "POST", "/api/v1/wallet/private-key", types.PinPayload{Pin: swag.String(test.WrongPin)}, http.StatusUnauthorized, httperrors.TypeWrongPin},
			{"wrong pin on add", "POST", "/api/v1/wallet/accounts", types.PinPayload{Pin: swag.String(test.WrongPin)}, http.StatusUnauthorized, httperrors.TypeWrongPin},
			{"wrong pin on mnemonic", "POST", "/api/v1/wallet/mnemonic", types.PinPayload{Pin: swag.String(test.WrongPin)}, http.StatusUnauthorized, httperrors.TypeWrongPin},
			{"unknown account", "POST", "/api/v1/wallet/accounts/5/select", nil, http.StatusNotFound, httperrors.TypeAccountNotFound},
			{"blank name", "PUT", "/api/v1/wallet/accounts/0/name", types.PutRenameAccountPayload{Name: swag.String("  ")}, http.StatusBadRequest, httperrors.TypeInvalidAccountName},
			{"wrong old pin", "POST", "/api/v1/wallet/pin", types.PostChangePinPayload{OldPin: swag.String(test.WrongPin), NewPin: swag.String("1")}, http.StatusUnauthorized, httperrors.TypeWrongPin},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, tt.method, tt.path, tt.body, nil)
				require.Equal(t, tt.status, res.Result().StatusCode, res.Body.String())

				var body httperrors.HTTPError
				test.ParseResponseBody(t, res, &body)
				assert.Equal(t, tt.errorType, body.Type)
			})
		}
	})
}

func TestPayloadValidation(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		tests := []struct {
			name string
			path string
			body any
			key  string
		}{
			{"missing pin", "/api/v1/wallet/private-key", map[string]any{}, "pin"},
			{"missing mnemonic", "/api/v1/wallet/import", types.PinPayload{Pin: swag.String(test.Pin)}, "mnemonic"},
			{"missing new pin", "/api/v1/wallet/pin", map[string]any{"oldPin": test.Pin}, "newPin"},
			{"too many words", "/api/v1/wallet", types.PostCreateWalletPayload{Mnemonic: make([]string, 25), Pin: swag.String(test.Pin)}, "mnemonic"},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				res := test.PerformRequest(t, s, "POST", tt.path, tt.body, nil)
				require.Equal(t, http.StatusBadRequest, res.Result().StatusCode, res.Body.String())

				var body httperrors.HTTPValidationError
				test.ParseResponseBody(t, res, &body)
				require.NotNil(t, body.HTTPError)
				assert.Equal(t, httperrors.TypeInvalidPayload, body.Type)
				require.Len(t, body.ValidationErrors, 1)
				assert.Equal(t, tt.key, swag.StringValue(body.ValidationErrors[0].Key))
				assert.Equal(t, "body", swag.StringValue(body.ValidationErrors[0].In))
			})
		}

		assert.False(t, s.Wallet.HasWallet())
	})
}

func TestPrivateKeyMatchesSelectedAccount(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createWallet(t, s)

		for i := 1; i <= 2; i++ {
			res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts", types.PinPayload{Pin: swag.String(test.Pin)}, nil)
			require.Equal(t, http.StatusCreated, res.Result().StatusCode)

			var account types.WalletAccount
			test.ParseResponseAndValidate(t, res, &account)
			assert.Equal(t, int64(i), swag.Int64Value(account.Index))
		}

		for _, index := range []string{"2", "0", "1"} {
			res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts/"+index+"/select", nil, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			res = test.PerformRequest(t, s, "POST", "/api/v1/wallet/private-key", types.PinPayload{Pin: swag.String(test.Pin)}, nil)
			require.Equal(t, http.StatusOK, res.Result().StatusCode)

			var privateKey types.PostPrivateKeyResponse
			test.ParseResponseAndValidate(t, res, &privateKey)

			selected, ok := s.Wallet.SelectedAccount()
			require.True(t, ok)

			expected, err := derivation.Derive(test.Mnemonic, selected.Index)
			require.NoError(t, err)
			assert.Equal(t, expected.Address, swag.StringValue(privateKey.Address))
			assert.Equal(t, expected.PrivateKey, swag.StringValue(privateKey.PrivateKey))
		}
	})
}

func TestConcurrentAddAccountRequests(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		createWallet(t, s)

		const n = 3

		var wg sync.WaitGroup
		for range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				res := test.PerformRequest(t, s, "POST", "/api/v1/wallet/accounts", types.PinPayload{Pin: swag.String(test.Pin)}, nil)
				assert.Equal(t, http.StatusCreated, res.Result().StatusCode)
			}()
		}
		wg.Wait()

		accounts := s.Wallet.Accounts()
		require.Len(t, accounts, n+1)
		for i, a := range accounts {
			assert.Equal(t, i, a.Index)
		}
	})
}
