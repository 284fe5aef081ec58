package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_DefaultsAndEnv(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("DATABASE_DRIVER", "postgres")

	cfg, err := LoadConfig(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Server.Address)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "test-secret", cfg.JWT.Secret)
	assert.Equal(t, 30*time.Minute, cfg.JWT.Expiration)
	assert.Equal(t, 120, cfg.RateLimit.RequestsPerMinute)
	assert.True(t, cfg.Seed.Enabled)
	assert.False(t, cfg.S3.Enabled())
}

func TestLoadConfig_File(t *testing.T) {
	t.Setenv("DATABASE_DRIVER", "")
	t.Setenv("JWT_SECRET", "")
	dir := t.TempDir()
	yaml := `
server:
  address: ":9090"
jwt:
  secret: "from-file"
  expiration: "2h"
log:
  level: debug
  format: json
s3:
  bucket_name: media
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0o600))

	cfg, err := LoadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Server.Address)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "json", cfg.Log.Format)
	assert.True(t, cfg.S3.Enabled())
	assert.Equal(t, DriverMemory, cfg.Database.Driver)
}

func TestLoadConfig_RequiresSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := LoadConfig(t.TempDir())
	assert.Error(t, err)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := Config{Database: DatabaseConfig{Driver: "sqlite"}, JWT: JWTConfig{Secret: "s"}}
	assert.ErrorContains(t, cfg.Validate(), "sqlite")
}
