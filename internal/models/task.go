package models

import "time"

// Task is a top-level unit of work. Reminder and Note are nil when the
// stored columns are NULL.
type Task struct {
	ID        int        `json:"id"`
	Title     string     `json:"title"`
	IsDone    bool       `json:"is_done"`
	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt time.Time  `json:"updated_at"`
	Reminder  *time.Time `json:"reminder,omitempty"`
	Note      *string    `json:"note,omitempty"`
}

// HasReminder reports whether a reminder is currently set.
func (t *Task) HasReminder() bool {
	return t.Reminder != nil
}

// GetID implements the quiet-output contract used by the CLI formatter.
func (t *Task) GetID() int {
	return t.ID
}
