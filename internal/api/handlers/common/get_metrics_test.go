package common_test

import (
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/test"
)

func TestGetMetrics(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		res := test.PerformRequest(t, s, "POST", "/api/v1/wallet", map[string]any{
			"mnemonic": strings.Fields(test.Mnemonic),
			"pin":      test.Pin,
		}, nil)
		require.Equal(t, http.StatusCreated, res.Result().StatusCode)

		res = test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		require.Equal(t, http.StatusOK, res.Result().StatusCode)

		body := res.Body.String()
		assert.Contains(t, body, `pouch_wallet_operations_total{operation="create_wallet",result="success"} 1`)
		assert.Contains(t, body, "pouch_wallet_accounts 1")
		assert.Contains(t, body, "go_goroutines")
	})
}

func TestGetMetricsDisabled(t *testing.T) {
	cfg := test.NewTestServerConfig(t)
	cfg.Metrics.Enabled = false

	test.WithTestServerConfigurable(t, cfg, func(s *api.Server) {
		assert.Nil(t, s.Metrics)

		res := test.PerformRequest(t, s, "GET", "/metrics", nil, nil)
		require.Equal(t, http.StatusNotFound, res.Result().StatusCode)
	})
}
