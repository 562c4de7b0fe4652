package util_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github/chapool/pouch-wallet/internal/util"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("POUCH_TEST_STRING", "abc")
	assert.Equal(t, "abc", util.GetEnv("POUCH_TEST_STRING", "def"))
	assert.Equal(t, "def", util.GetEnv("POUCH_TEST_STRING_UNSET", "def"))
}

func TestGetEnvAsInt(t *testing.T) {
	t.Setenv("POUCH_TEST_INT", "42")
	t.Setenv("POUCH_TEST_INT_BROKEN", "forty-two")
	assert.Equal(t, 42, util.GetEnvAsInt("POUCH_TEST_INT", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("POUCH_TEST_INT_BROKEN", 1))
	assert.Equal(t, 1, util.GetEnvAsInt("POUCH_TEST_INT_UNSET", 1))
}

func TestGetEnvAsBool(t *testing.T) {
	t.Setenv("POUCH_TEST_BOOL", "true")
	assert.True(t, util.GetEnvAsBool("POUCH_TEST_BOOL", false))
	assert.False(t, util.GetEnvAsBool("POUCH_TEST_BOOL_UNSET", false))
}

func TestGetEnvEnum(t *testing.T) {
	allowed := []string{"bolt", "memory"}

	t.Setenv("POUCH_TEST_ENUM", "memory")
	assert.Equal(t, "memory", util.GetEnvEnum("POUCH_TEST_ENUM", "bolt", allowed))

	t.Setenv("POUCH_TEST_ENUM", "redis")
	assert.Equal(t, "bolt", util.GetEnvEnum("POUCH_TEST_ENUM", "bolt", allowed))

	assert.Panics(t, func() {
		util.GetEnvEnum("POUCH_TEST_ENUM", "redis", allowed)
	})
}

func TestGetEnvAsDurationSeconds(t *testing.T) {
	t.Setenv("POUCH_TEST_DURATION", "3")
	assert.Equal(t, 3*time.Second, util.GetEnvAsDurationSeconds("POUCH_TEST_DURATION", time.Second))
	assert.Equal(t, time.Second, util.GetEnvAsDurationSeconds("POUCH_TEST_DURATION_UNSET", time.Second))
}

func TestZeroBytes(t *testing.T) {
	b := []byte{1, 2, 3}
	util.ZeroBytes(b)
	assert.Equal(t, []byte{0, 0, 0}, b)
}
