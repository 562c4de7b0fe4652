package derivation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github/chapool/pouch-wallet/internal/wallet/derivation"
)

func TestParseDerivationPath(t *testing.T) {
	path, err := derivation.ParseDerivationPath("m/44'/60'/0'/0/7")
	require.NoError(t, err)

	assert.Equal(t, derivation.DerivationPath{0x8000002c, 0x8000003c, 0x80000000, 0, 7}, path)
	assert.Equal(t, "m/44'/60'/0'/0/7", path.String())
}

func TestAccountPathRoundTrip(t *testing.T) {
	path, err := derivation.AccountPath(12)
	require.NoError(t, err)

	parsed, err := derivation.ParseDerivationPath(path.String())
	require.NoError(t, err)
	assert.Equal(t, path, parsed)
}

func TestParseDerivationPathFailing(t *testing.T) {
	tests := []string{
		"",
		"m",
		"44'/60'",
		"m//0",
		"m/abc",
		"m/-1",
		"m/2147483648'",
		"m/4294967296",
	}

	for _, tt := range tests {
		_, err := derivation.ParseDerivationPath(tt)
		assert.ErrorIs(t, err, derivation.ErrDerivation, tt)
	}
}

func TestEmptyPathString(t *testing.T) {
	assert.Equal(t, "", derivation.DerivationPath{}.String())
}
