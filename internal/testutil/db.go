package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/kadyrovd/delo/internal/database"
	"github.com/kadyrovd/delo/internal/models"
)

// SetupTestDB creates a throwaway file-backed database with the full schema.
// The file lives in t.TempDir() so cleanup is automatic.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	dbPath := filepath.Join(t.TempDir(), "tasks.db")
	db, err := database.InitDB(context.Background(), dbPath)
	if err != nil {
		t.Fatalf("Failed to initialize test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// CreateTestTask inserts a task through the repository and returns it.
func CreateTestTask(t *testing.T, db *sql.DB, title string) *models.Task {
	t.Helper()

	repo := database.NewRepository(db)
	task, err := repo.CreateTask(context.Background(), title, nil, nil)
	if err != nil {
		t.Fatalf("Failed to create test task: %v", err)
	}
	return task
}

// CreateTestSubtask inserts a subtask under the given task and returns it.
func CreateTestSubtask(t *testing.T, db *sql.DB, taskID int, title string) *models.Subtask {
	t.Helper()

	repo := database.NewRepository(db)
	subtask, err := repo.CreateSubtask(context.Background(), taskID, title)
	if err != nil {
		t.Fatalf("Failed to create test subtask: %v", err)
	}
	if subtask == nil {
		t.Fatalf("Failed to create test subtask: task %d does not exist", taskID)
	}
	return subtask
}
