package task

import "errors"

// Validation errors
var (
	ErrEmptyTitle       = errors.New("title cannot be empty")
	ErrInvalidTaskID    = errors.New("invalid task ID")
	ErrInvalidSubtaskID = errors.New("invalid subtask ID")
)

// Absence errors. Repositories report a missing row as an absent result;
// the service turns that into a sentinel so callers can branch with errors.Is.
var (
	ErrTaskNotFound    = errors.New("task not found")
	ErrSubtaskNotFound = errors.New("subtask not found")
)
