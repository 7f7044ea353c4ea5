package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"lifefit/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, config.DriverPostgres, cfg.DatabaseDriver)
	assert.Equal(t, "test_jwt_secret", cfg.JWTSecret)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, bcrypt.DefaultCost, cfg.BcryptCost)
	assert.Empty(t, cfg.RabbitMQURL)
}

func TestLoad_EnvironmentOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "s3cret")
	t.Setenv("APP_PORT", ":9090")
	t.Setenv("DATABASE_DRIVER", "sqlite")
	t.Setenv("DATABASE_DSN", "file::memory:")
	t.Setenv("TOKEN_TTL", "90m")
	t.Setenv("BCRYPT_COST", "4")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.AppPort)
	assert.Equal(t, config.DriverSQLite, cfg.DatabaseDriver)
	assert.Equal(t, "file::memory:", cfg.DatabaseDSN)
	assert.Equal(t, 90*time.Minute, cfg.TokenTTL)
	assert.Equal(t, 4, cfg.BcryptCost)
}

func TestLoad_ConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "lifefit.yaml")
	content := "app_port: \":7070\"\njwt_secret: from-file\nlog_level: debug\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	t.Setenv("CONFIG_FILE", path)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.AppPort)
	assert.Equal(t, "from-file", cfg.JWTSecret)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := config.Load()
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestValidate(t *testing.T) {
	valid := config.Config{
		DatabaseDriver: config.DriverSQLite,
		DatabaseDSN:    "file::memory:",
		JWTSecret:      "secret",
		TokenTTL:       time.Hour,
		BcryptCost:     bcrypt.MinCost,
	}
	assert.NoError(t, valid.Validate())

	unknownDriver := valid
	unknownDriver.DatabaseDriver = "oracle"
	assert.ErrorContains(t, unknownDriver.Validate(), "unsupported database driver")

	badCost := valid
	badCost.BcryptCost = 99
	assert.ErrorContains(t, badCost.Validate(), "BCRYPT_COST")

	badTTL := valid
	badTTL.TokenTTL = 0
	assert.ErrorContains(t, badTTL.Validate(), "TOKEN_TTL")
}
