package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-openapi/runtime"
	"github.com/go-openapi/strfmt"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/api"
	"github/chapool/pouch-wallet/internal/api/router"
	"github/chapool/pouch-wallet/internal/config"
	"github/chapool/pouch-wallet/internal/store"
)

// WithTestServer returns a fully configured server on in-memory stores.
func WithTestServer(t *testing.T, closure func(s *api.Server)) {
	t.Helper()

	WithTestServerConfigurable(t, NewTestServerConfig(t), closure)
}

// WithTestServerConfigurable is WithTestServer with an explicit config.
func WithTestServerConfigurable(t *testing.T, cfg config.Server, closure func(s *api.Server)) {
	t.Helper()

	stores := &api.Stores{
		Secure: store.NewMemory(),
		Meta:   store.NewMemory(),
	}

	s, err := api.InitNewServerWithStores(cfg, stores)
	require.NoError(t, err, "failed to init server")

	require.NoError(t, router.Init(s), "failed to init router")

	closure(s)

	// echo is not started, closing the stores is all that is left.
	require.NoError(t, s.Stores.Close())
}

// NewTestServerConfig returns the default config with in-memory stores and
// metrics enabled.
func NewTestServerConfig(t *testing.T) config.Server {
	t.Helper()

	cfg := config.DefaultServiceConfigFromEnv()
	cfg.Store.Backend = config.StoreBackendMemory
	cfg.Store.DataDir = t.TempDir()
	cfg.Wallet.Cipher = config.CipherAESGCM
	cfg.Wallet.RejectConcurrent = false
	cfg.Metrics.Enabled = true

	return cfg
}

// PerformRequest sends a request to s and returns the recorded response.
// A non-nil body is JSON encoded unless it already is a []byte or io.Reader.
func PerformRequest(t *testing.T, s *api.Server, method string, path string, body any, headers http.Header) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case []byte:
		reader = bytes.NewReader(b)
	case io.Reader:
		reader = b
	default:
		raw, err := json.Marshal(body)
		require.NoError(t, err, "failed to encode request body")
		reader = bytes.NewReader(raw)
	}

	req := httptest.NewRequest(method, path, reader)

	if headers != nil {
		req.Header = headers.Clone()
	}
	if body != nil && req.Header.Get(echo.HeaderContentType) == "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	res := httptest.NewRecorder()
	s.Echo.ServeHTTP(res, req)

	return res
}

// ParseResponseBody decodes the JSON response body into v.
func ParseResponseBody(t *testing.T, res *httptest.ResponseRecorder, v any) {
	t.Helper()

	require.NoError(t, json.NewDecoder(res.Result().Body).Decode(v), "failed to decode response body")
}

// ParseResponseAndValidate decodes the JSON response body into v and
// validates it against its schema.
func ParseResponseAndValidate(t *testing.T, res *httptest.ResponseRecorder, v runtime.Validatable) {
	t.Helper()

	ParseResponseBody(t, res, v)

	require.NoError(t, v.Validate(strfmt.Default), "response does not match schema")
}
