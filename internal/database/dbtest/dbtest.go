// Package dbtest opens throwaway in-memory databases for tests.
package dbtest

import (
	"fmt"
	"testing"
	"time"

	"booking-backend/internal/config"
	"booking-backend/internal/database"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

// New returns a migrated sqlite database that lives for the duration of t.
func New(t testing.TB) *database.Database {
	t.Helper()

	cfg := &config.Config{
		Database: config.DatabaseConfig{
			Driver:          "sqlite",
			SQLitePath:      fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
			MaxOpenConns:    1,
			MaxIdleConns:    1,
			ConnMaxLifetime: time.Hour,
			QueryTimeout:    5 * time.Second,
		},
	}

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = db.Close()
	})
	return db
}
