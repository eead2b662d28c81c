package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaultsAndEnv(t *testing.T) {
	t.Setenv(FileEnv, "")
	t.Setenv("RALLY_JWT_SECRET", "s3cret")
	t.Setenv("RALLY_FAUCET_ENABLED", "true")
	t.Setenv("RALLY_TOKEN_TTL", "90m")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ListenAddr)
	assert.Equal(t, "s3cret", cfg.JWTSecret)
	assert.True(t, cfg.FaucetEnabled)
	assert.Equal(t, uint64(10_000_000_000), cfg.FaucetMax)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
}

func TestLoadFileThenEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rally.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
listen_addr: ":9090"
db_path: /tmp/rally.db
jwt_secret: from-file
token_ttl: 2h
faucet_max: 42
`), 0o600))

	t.Setenv(FileEnv, path)
	t.Setenv("RALLY_DB_PATH", "/var/lib/rally.db")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.ListenAddr)
	assert.Equal(t, "/var/lib/rally.db", cfg.DBPath, "env overrides the file")
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, 2*time.Hour, cfg.TokenTTL)
	assert.Equal(t, uint64(42), cfg.FaucetMax)
	assert.Equal(t, "info", cfg.LogLevel, "defaults survive a partial file")
}

func TestLoadRejectsUnknownFileKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rally.yaml")
	require.NoError(t, os.WriteFile(path, []byte("jwt_secert: typo\n"), 0o600))
	t.Setenv(FileEnv, path)

	_, err := Load()
	assert.ErrorContains(t, err, "jwt_secert")
}

func TestLoadEnvError(t *testing.T) {
	t.Setenv(FileEnv, "")
	t.Setenv("RALLY_JWT_SECRET", "s3cret")
	t.Setenv("RALLY_FAUCET_MAX", "lots")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.JWTSecret = "s3cret"
	require.NoError(t, cfg.Validate())

	cfg.JWTSecret = ""
	cfg.TokenTTL = 0
	cfg.LogLevel = "loud"
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "jwt secret")
	assert.ErrorContains(t, err, "token ttl")
	assert.ErrorContains(t, err, "loud")
}
