package database

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/kadyrovd/delo/internal/models"
)

// TaskRepo handles pure data access for tasks.
// No business logic, no validation - just database operations.
type TaskRepo struct {
	db *sql.DB
}

const taskColumns = "id, title, is_done, created_at, updated_at, reminder_datetime, note"

// querier is satisfied by both *sql.DB and *sql.Tx so row scanning can be
// shared between standalone queries and transactional read-backs.
type querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// ListTasksFilter holds the optional task listing filters. Nil fields are
// not applied; set fields combine with logical AND.
type ListTasksFilter struct {
	// Search matches a substring anywhere in the title.
	Search *string
	// HasReminder filters on presence (true) or absence (false) of a reminder.
	HasReminder *bool
	// IsDone filters on the completion flag.
	IsDone *bool
}

// TaskUpdate describes a partial task update. Nil pointer fields are left
// unchanged. Reminder and Note carry an explicit Set flag so that clearing
// the stored value is distinguishable from not touching it.
type TaskUpdate struct {
	Title  *string
	IsDone *bool

	// Reminder is written only when ReminderSet is true; a nil Reminder
	// with ReminderSet clears the stored value.
	Reminder    *time.Time
	ReminderSet bool

	// Note is written only when NoteSet is true; a nil Note with NoteSet
	// clears the stored value.
	Note    *string
	NoteSet bool
}

// Empty reports whether the update would change nothing.
func (u TaskUpdate) Empty() bool {
	return u.Title == nil && u.IsDone == nil && !u.ReminderSet && !u.NoteSet
}

func scanTask(row *sql.Row) (*models.Task, error) {
	task := &models.Task{}
	var createdAt, updatedAt string
	var reminder, note sql.NullString
	err := row.Scan(&task.ID, &task.Title, &task.IsDone, &createdAt, &updatedAt, &reminder, &note)
	if err != nil {
		return nil, err
	}
	if task.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	if task.Reminder, err = parseNullTime(reminder); err != nil {
		return nil, err
	}
	task.Note = nullStringToPtr(note)
	return task, nil
}

// getTask fetches a single task. Returns (nil, nil) when the id is unknown;
// absence is an expected outcome, not a fault.
func getTask(ctx context.Context, q querier, id int) (*models.Task, error) {
	task, err := scanTask(q.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return task, err
}

// Create inserts a new task and returns the materialized row. The insert and
// read-back run in one transaction so the returned record is exactly what
// was committed.
func (r *TaskRepo) Create(ctx context.Context, title string, reminder *time.Time, note *string) (*models.Task, error) {
	ts := formatTime(now())
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		result, err := tx.ExecContext(ctx,
			`INSERT INTO tasks (title, is_done, created_at, updated_at, reminder_datetime, note)
			 VALUES (?, 0, ?, ?, ?, ?)`,
			title, ts, ts, formatNullTime(reminder), ptrToNullString(note),
		)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		task, err = getTask(ctx, tx, int(id))
		if err != nil {
			return err
		}
		if task == nil {
			return sql.ErrNoRows
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// List retrieves tasks matching the filter, newest first. Equal creation
// timestamps tie-break on descending id, so the order is deterministic even
// under a coarse clock.
func (r *TaskRepo) List(ctx context.Context, filter ListTasksFilter) ([]*models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks"
	var clauses []string
	var args []any
	if filter.Search != nil {
		clauses = append(clauses, "title LIKE ?")
		args = append(args, "%"+*filter.Search+"%")
	}
	if filter.HasReminder != nil {
		if *filter.HasReminder {
			clauses = append(clauses, "reminder_datetime IS NOT NULL")
		} else {
			clauses = append(clauses, "reminder_datetime IS NULL")
		}
	}
	if filter.IsDone != nil {
		clauses = append(clauses, "is_done = ?")
		args = append(args, *filter.IsDone)
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}
	query += " ORDER BY created_at DESC, id DESC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

// Get retrieves a task by ID. Returns (nil, nil) when absent.
func (r *TaskRepo) Get(ctx context.Context, id int) (*models.Task, error) {
	return getTask(ctx, r.db, id)
}

// Update applies a partial update and returns the refreshed row, or
// (nil, nil) when the id is unknown. Marking a task done clears its reminder
// in the same statement, whatever else the update carries. An empty update
// returns the current row without bumping updated_at.
func (r *TaskRepo) Update(ctx context.Context, id int, upd TaskUpdate) (*models.Task, error) {
	var task *models.Task
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getTask(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return nil
		}
		if upd.Empty() {
			task = current
			return nil
		}

		var sets []string
		var args []any
		if upd.Title != nil {
			sets = append(sets, "title = ?")
			args = append(args, *upd.Title)
		}
		if upd.IsDone != nil {
			sets = append(sets, "is_done = ?")
			args = append(args, *upd.IsDone)
		}
		switch {
		case upd.IsDone != nil && *upd.IsDone:
			// A completed task never keeps a pending reminder, even if the
			// same call tried to set one.
			sets = append(sets, "reminder_datetime = NULL")
		case upd.ReminderSet:
			sets = append(sets, "reminder_datetime = ?")
			args = append(args, formatNullTime(upd.Reminder))
		}
		if upd.NoteSet {
			sets = append(sets, "note = ?")
			args = append(args, ptrToNullString(upd.Note))
		}
		sets = append(sets, "updated_at = ?")
		args = append(args, formatTime(now()))
		args = append(args, id)

		_, err = tx.ExecContext(ctx,
			"UPDATE tasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return err
		}
		task, err = getTask(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes a task, cascading to its subtasks at the engine level.
// Returns whether a row existed and was removed.
func (r *TaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM tasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// DueReminders selects tasks whose reminder is set, not completed, and at or
// before the given instant, earliest-due first. Pure query: repeatable with
// no side effects; acknowledging a reminder is a separate Update per task.
func (r *TaskRepo) DueReminders(ctx context.Context, at time.Time) ([]*models.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT `+taskColumns+` FROM tasks
		 WHERE reminder_datetime IS NOT NULL
		   AND is_done = 0
		   AND reminder_datetime <= ?
		 ORDER BY reminder_datetime ASC, id ASC`,
		formatTime(at),
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectTasks(rows)
}

func collectTasks(rows *sql.Rows) ([]*models.Task, error) {
	var tasks []*models.Task
	for rows.Next() {
		task := &models.Task{}
		var createdAt, updatedAt string
		var reminder, note sql.NullString
		if err := rows.Scan(
			&task.ID, &task.Title, &task.IsDone,
			&createdAt, &updatedAt, &reminder, &note,
		); err != nil {
			return nil, err
		}
		var err error
		if task.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if task.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		if task.Reminder, err = parseNullTime(reminder); err != nil {
			return nil, err
		}
		task.Note = nullStringToPtr(note)
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
