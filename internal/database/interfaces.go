// Package database defines repository interfaces for data access
package database

import (
	"context"
	"time"

	"github.com/kadyrovd/delo/internal/models"
)

// TaskRepository defines all task-level data operations.
type TaskRepository interface {
	CreateTask(ctx context.Context, title string, reminder *time.Time, note *string) (*models.Task, error)
	ListTasks(ctx context.Context, filter ListTasksFilter) ([]*models.Task, error)
	GetTask(ctx context.Context, id int) (*models.Task, error)
	UpdateTask(ctx context.Context, id int, upd TaskUpdate) (*models.Task, error)
	DeleteTask(ctx context.Context, id int) (bool, error)
	DueReminders(ctx context.Context, at time.Time) ([]*models.Task, error)
}

// SubtaskRepository defines all subtask-level data operations.
type SubtaskRepository interface {
	CreateSubtask(ctx context.Context, taskID int, title string) (*models.Subtask, error)
	ListSubtasks(ctx context.Context, taskID int) ([]*models.Subtask, error)
	GetSubtask(ctx context.Context, id int) (*models.Subtask, error)
	UpdateSubtask(ctx context.Context, id int, upd SubtaskUpdate) (*models.Subtask, error)
	DeleteSubtask(ctx context.Context, id int) (bool, error)
	SubtaskProgress(ctx context.Context, taskID int) (models.Progress, error)
}

// DataStore is the unified interface consumed by the service layer.
// Composed of the domain-specific interfaces so consumers can depend on the
// narrower one when that is all they need.
type DataStore interface {
	TaskRepository
	SubtaskRepository
}
