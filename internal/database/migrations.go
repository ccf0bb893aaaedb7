package database

import (
	"context"
	"database/sql"
)

// runMigrations creates the database schema. Every statement is idempotent,
// so this runs unconditionally on startup.
func runMigrations(ctx context.Context, db *sql.DB) error {
	// Create tasks table. Timestamps are fixed-width UTC ISO-8601 text so
	// that string comparison matches chronological order.
	_, err := db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS tasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			is_done INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			reminder_datetime TEXT,
			note TEXT,
			CHECK (updated_at >= created_at)
		)
	`)
	if err != nil {
		return err
	}

	// Create subtasks table
	_, err = db.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS subtasks (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			task_id INTEGER NOT NULL,
			title TEXT NOT NULL,
			is_done INTEGER NOT NULL DEFAULT 0,
			created_at TEXT NOT NULL,
			updated_at TEXT NOT NULL,
			FOREIGN KEY (task_id) REFERENCES tasks(id) ON DELETE CASCADE
		)
	`)
	if err != nil {
		return err
	}

	// A completed task can never hold a pending reminder. Enforced here so
	// the rule survives callers that write is_done with raw SQL.
	_, err = db.ExecContext(ctx, `
		CREATE TRIGGER IF NOT EXISTS trg_tasks_done_clears_reminder
		AFTER UPDATE OF is_done ON tasks
		WHEN NEW.is_done = 1 AND NEW.reminder_datetime IS NOT NULL
		BEGIN
			UPDATE tasks SET reminder_datetime = NULL WHERE id = NEW.id;
		END
	`)
	if err != nil {
		return err
	}

	// Index for subtask enumeration and progress counts
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_subtasks_task
		ON subtasks(task_id, created_at)
	`)
	if err != nil {
		return err
	}

	// Index for the due-reminder scan (pending reminders only)
	_, err = db.ExecContext(ctx, `
		CREATE INDEX IF NOT EXISTS idx_tasks_reminder
		ON tasks(reminder_datetime) WHERE reminder_datetime IS NOT NULL
	`)
	if err != nil {
		return err
	}

	return nil
}
