package task

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/kadyrovd/delo/internal/database"
	"github.com/kadyrovd/delo/internal/models"
)

// Service defines all task-related business operations. It implements the
// caller-layer responsibilities the storage core deliberately leaves out:
// input validation and translating absent rows into sentinel errors.
type Service interface {
	// Task operations
	CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error)
	GetTask(ctx context.Context, taskID int) (*models.Task, error)
	UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	DeleteTask(ctx context.Context, taskID int) error

	// Subtask operations
	CreateSubtask(ctx context.Context, req CreateSubtaskRequest) (*models.Subtask, error)
	ListSubtasks(ctx context.Context, taskID int) ([]*models.Subtask, error)
	UpdateSubtask(ctx context.Context, req UpdateSubtaskRequest) (*models.Subtask, error)
	DeleteSubtask(ctx context.Context, subtaskID int) error
	SubtaskProgress(ctx context.Context, taskID int) (models.Progress, error)

	// Reminder operations
	DueReminders(ctx context.Context, at time.Time) ([]*models.Task, error)
	AcknowledgeReminder(ctx context.Context, taskID int) error
}

// CreateTaskRequest encapsulates all data needed to create a task.
// Title is stored exactly as given; only empty-after-trim titles are rejected.
type CreateTaskRequest struct {
	Title    string
	Reminder *time.Time
	Note     *string
}

// ListTasksRequest holds the optional listing filters, combined with AND.
type ListTasksRequest struct {
	Search      *string
	HasReminder *bool
	IsDone      *bool
}

// UpdateTaskRequest encapsulates a partial task update.
// Pointer fields are optional - nil means don't update. Reminder and Note
// need the extra Set flag because clearing them is a first-class operation.
type UpdateTaskRequest struct {
	TaskID      int
	Title       *string
	IsDone      *bool
	Reminder    *time.Time
	ReminderSet bool
	Note        *string
	NoteSet     bool
}

// CreateSubtaskRequest encapsulates all data needed to create a subtask.
type CreateSubtaskRequest struct {
	TaskID int
	Title  string
}

// UpdateSubtaskRequest encapsulates a partial subtask update.
type UpdateSubtaskRequest struct {
	SubtaskID int
	Title     *string
	IsDone    *bool
}

// service implements Service interface
type service struct {
	repo database.DataStore
}

// NewService creates a new task service over the given data store.
func NewService(repo database.DataStore) Service {
	return &service{repo: repo}
}

func (s *service) CreateTask(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	task, err := s.repo.CreateTask(ctx, req.Title, req.Reminder, req.Note)
	if err != nil {
		return nil, fmt.Errorf("failed to create task: %w", err)
	}
	return task, nil
}

func (s *service) ListTasks(ctx context.Context, req ListTasksRequest) ([]*models.Task, error) {
	tasks, err := s.repo.ListTasks(ctx, database.ListTasksFilter{
		Search:      req.Search,
		HasReminder: req.HasReminder,
		IsDone:      req.IsDone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

func (s *service) GetTask(ctx context.Context, taskID int) (*models.Task, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	task, err := s.repo.GetTask(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to get task %d: %w", taskID, err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *service) UpdateTask(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	task, err := s.repo.UpdateTask(ctx, req.TaskID, database.TaskUpdate{
		Title:       req.Title,
		IsDone:      req.IsDone,
		Reminder:    req.Reminder,
		ReminderSet: req.ReminderSet,
		Note:        req.Note,
		NoteSet:     req.NoteSet,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update task %d: %w", req.TaskID, err)
	}
	if task == nil {
		return nil, ErrTaskNotFound
	}
	return task, nil
}

func (s *service) DeleteTask(ctx context.Context, taskID int) error {
	if taskID <= 0 {
		return ErrInvalidTaskID
	}
	deleted, err := s.repo.DeleteTask(ctx, taskID)
	if err != nil {
		return fmt.Errorf("failed to delete task %d: %w", taskID, err)
	}
	if !deleted {
		return ErrTaskNotFound
	}
	return nil
}

func (s *service) CreateSubtask(ctx context.Context, req CreateSubtaskRequest) (*models.Subtask, error) {
	if req.TaskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	subtask, err := s.repo.CreateSubtask(ctx, req.TaskID, req.Title)
	if err != nil {
		return nil, fmt.Errorf("failed to create subtask: %w", err)
	}
	if subtask == nil {
		return nil, ErrTaskNotFound
	}
	return subtask, nil
}

func (s *service) ListSubtasks(ctx context.Context, taskID int) ([]*models.Subtask, error) {
	if taskID <= 0 {
		return nil, ErrInvalidTaskID
	}
	subtasks, err := s.repo.ListSubtasks(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to list subtasks for task %d: %w", taskID, err)
	}
	return subtasks, nil
}

func (s *service) UpdateSubtask(ctx context.Context, req UpdateSubtaskRequest) (*models.Subtask, error) {
	if req.SubtaskID <= 0 {
		return nil, ErrInvalidSubtaskID
	}
	if req.Title != nil && strings.TrimSpace(*req.Title) == "" {
		return nil, ErrEmptyTitle
	}

	subtask, err := s.repo.UpdateSubtask(ctx, req.SubtaskID, database.SubtaskUpdate{
		Title:  req.Title,
		IsDone: req.IsDone,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to update subtask %d: %w", req.SubtaskID, err)
	}
	if subtask == nil {
		return nil, ErrSubtaskNotFound
	}
	return subtask, nil
}

func (s *service) DeleteSubtask(ctx context.Context, subtaskID int) error {
	if subtaskID <= 0 {
		return ErrInvalidSubtaskID
	}
	deleted, err := s.repo.DeleteSubtask(ctx, subtaskID)
	if err != nil {
		return fmt.Errorf("failed to delete subtask %d: %w", subtaskID, err)
	}
	if !deleted {
		return ErrSubtaskNotFound
	}
	return nil
}

func (s *service) SubtaskProgress(ctx context.Context, taskID int) (models.Progress, error) {
	if taskID <= 0 {
		return models.Progress{}, ErrInvalidTaskID
	}
	progress, err := s.repo.SubtaskProgress(ctx, taskID)
	if err != nil {
		return models.Progress{}, fmt.Errorf("failed to compute progress for task %d: %w", taskID, err)
	}
	return progress, nil
}

func (s *service) DueReminders(ctx context.Context, at time.Time) ([]*models.Task, error) {
	tasks, err := s.repo.DueReminders(ctx, at)
	if err != nil {
		return nil, fmt.Errorf("failed to query due reminders: %w", err)
	}
	return tasks, nil
}

// AcknowledgeReminder clears a surfaced reminder. Called once per task after
// the caller has presented it; separate from DueReminders so the query stays
// side-effect free.
func (s *service) AcknowledgeReminder(ctx context.Context, taskID int) error {
	_, err := s.UpdateTask(ctx, UpdateTaskRequest{
		TaskID:      taskID,
		ReminderSet: true,
	})
	return err
}
