package models

import "time"

// Subtask is a decomposable step of a task. TaskID is immutable once
// the row is created; a subtask never outlives or changes its parent.
type Subtask struct {
	ID        int       `json:"id"`
	TaskID    int       `json:"task_id"`
	Title     string    `json:"title"`
	IsDone    bool      `json:"is_done"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// GetID implements the quiet-output contract used by the CLI formatter.
func (s *Subtask) GetID() int {
	return s.ID
}

// Progress is the derived completion pair for a task's subtasks.
// It is recomputed on demand and never stored.
type Progress struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}
