// Package testhelper bootstraps a migrated SQLite database for repository
// tests. Each test gets its own temporary database file, so tests can run in
// parallel without sharing state.
package testhelper

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/heartmarshall/mytreino-backend/internal/adapter/sqlite"
	"github.com/heartmarshall/mytreino-backend/internal/config"
)

// SetupTestDB opens a fresh temporary SQLite database, applies all goose
// migrations, and returns the ready handle. The handle is closed via
// t.Cleanup; the file lives in t.TempDir and vanishes with it.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cfg := config.DatabaseConfig{
		Path:        filepath.Join(t.TempDir(), "test.db"),
		BusyTimeout: 5 * time.Second,
	}

	db, err := sqlite.Open(ctx, cfg)
	if err != nil {
		t.Fatalf("testhelper: open test DB: %v", err)
	}
	t.Cleanup(func() {
		db.Close()
	})

	if err := sqlite.Migrate(ctx, db); err != nil {
		t.Fatalf("testhelper: migrate test DB: %v", err)
	}

	return db
}

// SeedWorkoutRow inserts a bare workouts row and returns its id. Useful for
// history tests that need a source workout without the full save path.
func SeedWorkoutRow(t *testing.T, db *sql.DB, name string) int64 {
	t.Helper()

	now := time.Now().UTC().Format(time.RFC3339)
	res, err := db.Exec(
		`INSERT INTO workouts (name, date, category, created_at, updated_at) VALUES (?, ?, ?, ?, ?)`,
		name, now, "other", now, now,
	)
	if err != nil {
		t.Fatalf("testhelper: seed workout row: %v", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("testhelper: seed workout row id: %v", err)
	}
	return id
}
