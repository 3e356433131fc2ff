package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, "studia", cfg.Database.DBName)
	assert.Equal(t, 30*time.Minute, cfg.AccessTokenExp())
	assert.Equal(t, "studia.app", cfg.JWT.Issuer)
}

func TestLoadConfigMissingSecret(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT secret is required")
}

func TestLoadConfigEnvOverride(t *testing.T) {
	path := writeConfigFile(t, `
server:
  port: "9090"
jwt:
  secret: file-secret
  access_token_expiration: 30m
`)

	t.Setenv("SERVER_PORT", "7070")
	t.Setenv("JWT_SECRET", "env-secret")
	t.Setenv("JWT_ACCESS_TOKEN_EXPIRATION", "45m")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "7070", cfg.Server.Port)
	assert.Equal(t, "env-secret", cfg.JWT.Secret)
	assert.Equal(t, 45*time.Minute, cfg.AccessTokenExp())
}

func TestLoadConfigInvalidExpiration(t *testing.T) {
	path := writeConfigFile(t, `
jwt:
  secret: file-secret
  access_token_expiration: soon
`)

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestGetPostgresConnectionString(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "db.internal"
	cfg.Database.Port = "5433"
	cfg.Database.User = "studia"
	cfg.Database.Password = "pw"
	cfg.Database.DBName = "studia"

	assert.Equal(t,
		"postgres://studia:pw@db.internal:5433/studia?sslmode=disable",
		cfg.GetPostgresConnectionString())
}
