package probe

import (
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/test"
)

func TestRunLiveness(t *testing.T) {
	cfg := test.NewTestServerConfig(t)
	cfg.Store.Backend = config.StoreBackendBolt

	require.NoError(t, runLiveness(cfg, true))

	file := filepath.Join(cfg.Store.DataDir, "file")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	cfg.Store.DataDir = file
	require.Error(t, runLiveness(cfg, false))

	cfg.Store.DataDir = filepath.Join(t.TempDir(), "missing")
	require.Error(t, runLiveness(cfg, false))
}

func TestRunReadiness(t *testing.T) {
	test.WithTestServer(t, func(s *api.Server) {
		srv := httptest.NewServer(s.Echo)
		defer srv.Close()

		require.NoError(t, runReadiness(t.Context(), srv.URL+"/-/ready", true))
		require.Error(t, runReadiness(t.Context(), srv.URL+"/missing", false))
	})

	unavailable := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer unavailable.Close()

	require.Error(t, runReadiness(t.Context(), unavailable.URL, false))
}
