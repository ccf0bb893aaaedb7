package database

import (
	"context"
	"database/sql"
	"time"

	"github.com/kadyrovd/delo/internal/models"
)

// Repository provides a unified interface to all data operations.
// It composes domain-specific repositories using struct embedding.
type Repository struct {
	*TaskRepo
	*SubtaskRepo
}

// NewRepository creates a new Repository instance wrapping the given database connection.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		TaskRepo:    &TaskRepo{db: db},
		SubtaskRepo: &SubtaskRepo{db: db},
	}
}

// Wrapper methods for TaskRepo to present a single flat API
func (r *Repository) CreateTask(ctx context.Context, title string, reminder *time.Time, note *string) (*models.Task, error) {
	return r.TaskRepo.Create(ctx, title, reminder, note)
}

func (r *Repository) ListTasks(ctx context.Context, filter ListTasksFilter) ([]*models.Task, error) {
	return r.TaskRepo.List(ctx, filter)
}

func (r *Repository) GetTask(ctx context.Context, id int) (*models.Task, error) {
	return r.TaskRepo.Get(ctx, id)
}

func (r *Repository) UpdateTask(ctx context.Context, id int, upd TaskUpdate) (*models.Task, error) {
	return r.TaskRepo.Update(ctx, id, upd)
}

func (r *Repository) DeleteTask(ctx context.Context, id int) (bool, error) {
	return r.TaskRepo.Delete(ctx, id)
}

func (r *Repository) DueReminders(ctx context.Context, at time.Time) ([]*models.Task, error) {
	return r.TaskRepo.DueReminders(ctx, at)
}

// Wrapper methods for SubtaskRepo
func (r *Repository) CreateSubtask(ctx context.Context, taskID int, title string) (*models.Subtask, error) {
	return r.SubtaskRepo.Create(ctx, taskID, title)
}

func (r *Repository) ListSubtasks(ctx context.Context, taskID int) ([]*models.Subtask, error) {
	return r.SubtaskRepo.ListByTask(ctx, taskID)
}

func (r *Repository) GetSubtask(ctx context.Context, id int) (*models.Subtask, error) {
	return r.SubtaskRepo.Get(ctx, id)
}

func (r *Repository) UpdateSubtask(ctx context.Context, id int, upd SubtaskUpdate) (*models.Subtask, error) {
	return r.SubtaskRepo.Update(ctx, id, upd)
}

func (r *Repository) DeleteSubtask(ctx context.Context, id int) (bool, error) {
	return r.SubtaskRepo.Delete(ctx, id)
}

func (r *Repository) SubtaskProgress(ctx context.Context, taskID int) (models.Progress, error) {
	return r.SubtaskRepo.Progress(ctx, taskID)
}
