package config_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/config"
)

func TestPrintServiceEnv(t *testing.T) {
	config := config.DefaultServiceConfigFromEnv()
	_, err := json.MarshalIndent(config, "", "  ")

	if err != nil {
		t.Fatal(err)
	}
}

func TestStorePaths(t *testing.T) {
	t.Setenv("POUCH_DATA_DIR", "/var/lib/pouch")
	t.Setenv("POUCH_SECRET_FILE", "s.db")
	t.Setenv("POUCH_METADATA_FILE", "m.db")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, "/var/lib/pouch/s.db", cfg.Store.SecretPath())
	assert.Equal(t, "/var/lib/pouch/m.db", cfg.Store.MetadataPath())
}

func TestInvalidCipherFallsBackToDefault(t *testing.T) {
	t.Setenv("POUCH_CIPHER", "rot13")

	cfg := config.DefaultServiceConfigFromEnv()
	assert.Equal(t, config.CipherAESGCM, cfg.Wallet.Cipher)
}

func TestDotEnvLoad(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env.local")
	require.NoError(t, os.WriteFile(envFile, []byte("POUCH_STORE_BACKEND=memory\nPOUCH_REJECT_CONCURRENT=true\n"), 0o600))

	loaded := map[string]string{}
	err := config.DotEnvLoad(envFile, func(key string, value string) error {
		loaded[key] = value
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, "memory", loaded["POUCH_STORE_BACKEND"])
	assert.Equal(t, "true", loaded["POUCH_REJECT_CONCURRENT"])
}

func TestDotEnvLoadMissingFile(t *testing.T) {
	err := config.DotEnvLoad(filepath.Join(t.TempDir(), "missing.env"), func(string, string) error { return nil })
	assert.True(t, os.IsNotExist(err))
}
