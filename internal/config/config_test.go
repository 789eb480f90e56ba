package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8010", cfg.Server.Port)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 10*time.Second, cfg.Database.QueryTimeout)
	assert.False(t, cfg.MinIO.Enabled)
	assert.NoError(t, cfg.Validate())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("SQLITE_PATH", "/tmp/directory.db")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, "/tmp/directory.db?_foreign_keys=on", cfg.GetDSN())
	assert.NoError(t, cfg.Validate())
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("DB_QUERY_TIMEOUT", "soon")

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Database.Driver = "mysql"
	assert.ErrorContains(t, cfg.Validate(), "unsupported DB_DRIVER")

	cfg.Database.Driver = "postgres"
	cfg.MinIO.Enabled = true
	assert.ErrorContains(t, cfg.Validate(), "AWS_ACCESS_KEY_ID")

	cfg.MinIO.AccessKeyID = "key"
	cfg.MinIO.SecretAccessKey = "secret"
	assert.NoError(t, cfg.Validate())
}

func TestSQLiteDSNWithQuery(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{Driver: "sqlite", SQLitePath: "file:dir?mode=memory"}}
	assert.Equal(t, "file:dir?mode=memory&_foreign_keys=on", cfg.GetDSN())
}

func TestPostgresDSN(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Contains(t, cfg.GetDSN(), "host=localhost")
	assert.Contains(t, cfg.GetDSN(), "dbname=booking_db")
}
