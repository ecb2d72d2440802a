package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEnsureJWTSecret_GeneratesAndPersists(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	envPath := filepath.Join(t.TempDir(), ".env")

	secret, err := EnsureJWTSecret(envPath)
	assert.NoError(t, err)
	// 32 random bytes, hex encoded.
	assert.Len(t, secret, 64)
	assert.Equal(t, secret, os.Getenv("JWT_SECRET"))

	content, err := os.ReadFile(envPath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "JWT_SECRET="+secret)
}

func TestEnsureJWTSecret_KeepsExisting(t *testing.T) {
	existing := strings.Repeat("a", 32)
	t.Setenv("JWT_SECRET", existing)
	envPath := filepath.Join(t.TempDir(), ".env")

	secret, err := EnsureJWTSecret(envPath)
	assert.NoError(t, err)
	assert.Equal(t, existing, secret)

	// Nothing written when the env var already qualifies.
	_, statErr := os.Stat(envPath)
	assert.True(t, os.IsNotExist(statErr))
}

func TestEnsureJWTSecret_ReplacesShortSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "too-short")
	envPath := filepath.Join(t.TempDir(), ".env")
	assert.NoError(t, os.WriteFile(envPath, []byte("DB_HOST=localhost\nJWT_SECRET=too-short\n"), 0o600))

	secret, err := EnsureJWTSecret(envPath)
	assert.NoError(t, err)
	assert.Len(t, secret, 64)

	content, err := os.ReadFile(envPath)
	assert.NoError(t, err)
	assert.Contains(t, string(content), "DB_HOST=localhost")
	assert.Contains(t, string(content), "JWT_SECRET="+secret)
	assert.NotContains(t, string(content), "JWT_SECRET=too-short")
}
