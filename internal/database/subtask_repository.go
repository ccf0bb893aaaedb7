package database

import (
	"context"
	"database/sql"
	"strings"

	"github.com/kadyrovd/delo/internal/models"
)

// SubtaskRepo handles pure data access for subtasks.
type SubtaskRepo struct {
	db *sql.DB
}

const subtaskColumns = "id, task_id, title, is_done, created_at, updated_at"

// SubtaskUpdate describes a partial subtask update. Nil fields are left
// unchanged.
type SubtaskUpdate struct {
	Title  *string
	IsDone *bool
}

// Empty reports whether the update would change nothing.
func (u SubtaskUpdate) Empty() bool {
	return u.Title == nil && u.IsDone == nil
}

func getSubtask(ctx context.Context, q querier, id int) (*models.Subtask, error) {
	subtask := &models.Subtask{}
	var createdAt, updatedAt string
	err := q.QueryRowContext(ctx,
		"SELECT "+subtaskColumns+" FROM subtasks WHERE id = ?", id,
	).Scan(&subtask.ID, &subtask.TaskID, &subtask.Title, &subtask.IsDone, &createdAt, &updatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if subtask.CreatedAt, err = parseTime(createdAt); err != nil {
		return nil, err
	}
	if subtask.UpdatedAt, err = parseTime(updatedAt); err != nil {
		return nil, err
	}
	return subtask, nil
}

// Create inserts a subtask under the given task and returns the materialized
// row. Returns (nil, nil) without inserting anything when the owning task
// does not exist; the existence check and insert share one transaction so
// the parent cannot vanish in between.
func (r *SubtaskRepo) Create(ctx context.Context, taskID int, title string) (*models.Subtask, error) {
	ts := formatTime(now())
	var subtask *models.Subtask
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		var exists int
		err := tx.QueryRowContext(ctx, "SELECT 1 FROM tasks WHERE id = ?", taskID).Scan(&exists)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		result, err := tx.ExecContext(ctx,
			`INSERT INTO subtasks (task_id, title, is_done, created_at, updated_at)
			 VALUES (?, ?, 0, ?, ?)`,
			taskID, title, ts, ts,
		)
		if err != nil {
			return err
		}
		id, err := result.LastInsertId()
		if err != nil {
			return err
		}
		subtask, err = getSubtask(ctx, tx, int(id))
		return err
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

// ListByTask retrieves all subtasks of a task in natural step order
// (creation time ascending).
func (r *SubtaskRepo) ListByTask(ctx context.Context, taskID int) ([]*models.Subtask, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT "+subtaskColumns+" FROM subtasks WHERE task_id = ? ORDER BY created_at ASC, id ASC",
		taskID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var subtasks []*models.Subtask
	for rows.Next() {
		subtask := &models.Subtask{}
		var createdAt, updatedAt string
		if err := rows.Scan(
			&subtask.ID, &subtask.TaskID, &subtask.Title, &subtask.IsDone,
			&createdAt, &updatedAt,
		); err != nil {
			return nil, err
		}
		if subtask.CreatedAt, err = parseTime(createdAt); err != nil {
			return nil, err
		}
		if subtask.UpdatedAt, err = parseTime(updatedAt); err != nil {
			return nil, err
		}
		subtasks = append(subtasks, subtask)
	}
	return subtasks, rows.Err()
}

// Get retrieves a subtask by ID. Returns (nil, nil) when absent.
func (r *SubtaskRepo) Get(ctx context.Context, id int) (*models.Subtask, error) {
	return getSubtask(ctx, r.db, id)
}

// Update applies a partial update and returns the refreshed row, or
// (nil, nil) when the id is unknown. An empty update returns the current row
// without bumping updated_at.
func (r *SubtaskRepo) Update(ctx context.Context, id int, upd SubtaskUpdate) (*models.Subtask, error) {
	var subtask *models.Subtask
	err := withTx(ctx, r.db, func(tx *sql.Tx) error {
		current, err := getSubtask(ctx, tx, id)
		if err != nil {
			return err
		}
		if current == nil {
			return nil
		}
		if upd.Empty() {
			subtask = current
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
		sets = append(sets, "updated_at = ?")
		args = append(args, formatTime(now()))
		args = append(args, id)

		_, err = tx.ExecContext(ctx,
			"UPDATE subtasks SET "+strings.Join(sets, ", ")+" WHERE id = ?", args...)
		if err != nil {
			return err
		}
		subtask, err = getSubtask(ctx, tx, id)
		return err
	})
	if err != nil {
		return nil, err
	}
	return subtask, nil
}

// Delete removes a subtask. Returns whether a row existed and was removed.
func (r *SubtaskRepo) Delete(ctx context.Context, id int) (bool, error) {
	result, err := r.db.ExecContext(ctx, "DELETE FROM subtasks WHERE id = ?", id)
	if err != nil {
		return false, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Progress computes the completion pair for a task's subtasks, fresh from
// the current rows. A task with no subtasks - including a task id that no
// longer exists - yields (0, 0), never an error.
func (r *SubtaskRepo) Progress(ctx context.Context, taskID int) (models.Progress, error) {
	var progress models.Progress
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*), COALESCE(SUM(is_done), 0) FROM subtasks WHERE task_id = ?`,
		taskID,
	).Scan(&progress.Total, &progress.Completed)
	if err != nil {
		return models.Progress{}, err
	}
	return progress, nil
}
