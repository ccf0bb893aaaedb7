package database

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/kadyrovd/delo/internal/models"
)

// setupTestDB creates an in-memory database with the full schema.
func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	ctx := context.Background()
	if _, err := db.ExecContext(ctx, "PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("Failed to enable foreign keys: %v", err)
	}
	db.SetMaxOpenConns(1)

	if err := runMigrations(ctx, db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

// setupTestDBFile creates a file-backed database so persistence across
// close/reopen can be exercised.
func setupTestDBFile(t *testing.T) (string, *sql.DB) {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	db, err := InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return dbPath, db
}

func createTestTask(t *testing.T, repo *Repository, title string) *models.Task {
	t.Helper()
	task, err := repo.CreateTask(context.Background(), title, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

func strPtr(v string) *string { return &v }

func boolPtr(v bool) *bool { return &v }
