// Package databasetest provides migrated throwaway stores for tests.
package databasetest

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"gorm.io/gorm"

	"github.com/mefdet1/Assignment-5/internal/config"
	"github.com/mefdet1/Assignment-5/internal/database"
)

// Open returns a migrated in-memory SQLite store that is closed when the test ends.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	ctx := context.Background()
	cfg := config.DatabaseConfig{
		Driver:          "sqlite",
		DSN:             ":memory:",
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: 0,
		SlowQueryMS:     200,
	}

	db, err := database.Open(ctx, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	if err != nil {
		t.Fatalf("open test database: %v", err)
	}
	t.Cleanup(func() { _ = database.Close(db) })

	if err := database.Migrate(ctx, db); err != nil {
		t.Fatalf("migrate test database: %v", err)
	}

	return db
}
