package database

import (
	"context"
	"testing"
	"time"
)

func TestCreateTaskRoundTrip(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)
	note := "buy oat milk"
	task, err := repo.CreateTask(ctx, "groceries", &reminder, &note)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if task.ID <= 0 {
		t.Errorf("expected positive id, got %d", task.ID)
	}
	if task.Title != "groceries" {
		t.Errorf("expected title %q, got %q", "groceries", task.Title)
	}
	if task.IsDone {
		t.Error("new task should not be done")
	}
	if task.Reminder == nil || !task.Reminder.Equal(reminder) {
		t.Errorf("expected reminder %v, got %v", reminder, task.Reminder)
	}
	if task.Note == nil || *task.Note != note {
		t.Errorf("expected note %q, got %v", note, task.Note)
	}
	if !task.CreatedAt.Equal(task.UpdatedAt) {
		t.Errorf("fresh task should have created_at == updated_at, got %v / %v",
			task.CreatedAt, task.UpdatedAt)
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got == nil {
		t.Fatal("expected task, got nil")
	}
	if got.Title != task.Title || got.ID != task.ID {
		t.Errorf("read back %+v, want %+v", got, task)
	}
}

func TestCreateTaskPreservesLiteralTitle(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task := createTestTask(t, repo, "  padded title  ")
	if task.Title != "  padded title  " {
		t.Errorf("title was altered in storage: %q", task.Title)
	}
}

func TestGetTaskAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task, err := repo.GetTask(context.Background(), 999)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if task != nil {
		t.Errorf("expected nil for unknown id, got %+v", task)
	}
}

func TestListTasksNewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	first := createTestTask(t, repo, "first")
	second := createTestTask(t, repo, "second")
	third := createTestTask(t, repo, "third")

	tasks, err := repo.ListTasks(ctx, ListTasksFilter{})
	if err != nil {
		t.Fatalf("ListTasks failed: %v", err)
	}
	if len(tasks) != 3 {
		t.Fatalf("expected 3 tasks, got %d", len(tasks))
	}

	// Newest first; same-instant creations fall back to descending id.
	wantIDs := []int{third.ID, second.ID, first.ID}
	for i, want := range wantIDs {
		if tasks[i].ID != want {
			t.Errorf("position %d: expected id %d, got %d", i, want, tasks[i].ID)
		}
	}
}

func TestListTasksFilters(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Now().UTC().Add(time.Hour)
	if _, err := repo.CreateTask(ctx, "write report", &reminder, nil); err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}
	createTestTask(t, repo, "water plants")
	done := createTestTask(t, repo, "report taxes")
	if _, err := repo.UpdateTask(ctx, done.ID, TaskUpdate{IsDone: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}

	tests := []struct {
		name    string
		filter  ListTasksFilter
		wantLen int
	}{
		{"no filter", ListTasksFilter{}, 3},
		{"search substring", ListTasksFilter{Search: strPtr("report")}, 2},
		{"search no match", ListTasksFilter{Search: strPtr("zzz")}, 0},
		{"has reminder", ListTasksFilter{HasReminder: boolPtr(true)}, 1},
		{"no reminder", ListTasksFilter{HasReminder: boolPtr(false)}, 2},
		{"done only", ListTasksFilter{IsDone: boolPtr(true)}, 1},
		{"pending only", ListTasksFilter{IsDone: boolPtr(false)}, 2},
		{"combined AND", ListTasksFilter{Search: strPtr("report"), IsDone: boolPtr(false)}, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tasks, err := repo.ListTasks(ctx, tt.filter)
			if err != nil {
				t.Fatalf("ListTasks failed: %v", err)
			}
			if len(tasks) != tt.wantLen {
				t.Errorf("expected %d tasks, got %d", tt.wantLen, len(tasks))
			}
		})
	}
}

func TestUpdateTaskPartial(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	note := "original note"
	task, err := repo.CreateTask(ctx, "refactor", nil, &note)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	updated, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{Title: strPtr("refactor parser")})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Title != "refactor parser" {
		t.Errorf("title not updated: %q", updated.Title)
	}
	if updated.Note == nil || *updated.Note != note {
		t.Errorf("untouched note changed: %v", updated.Note)
	}
	if updated.UpdatedAt.Before(task.UpdatedAt) {
		t.Errorf("updated_at went backwards: %v < %v", updated.UpdatedAt, task.UpdatedAt)
	}
}

func TestUpdateTaskEmptyLeavesRowUntouched(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := createTestTask(t, repo, "unchanged")

	updated, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !updated.UpdatedAt.Equal(task.UpdatedAt) {
		t.Errorf("empty update bumped updated_at: %v -> %v", task.UpdatedAt, updated.UpdatedAt)
	}
	if updated.Title != task.Title {
		t.Errorf("empty update changed title: %q", updated.Title)
	}
}

func TestUpdateTaskClearReminderAndNote(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Now().UTC().Add(time.Hour)
	note := "scratch"
	task, err := repo.CreateTask(ctx, "cleanup", &reminder, &note)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	updated, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{
		ReminderSet: true,
		NoteSet:     true,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Reminder != nil {
		t.Errorf("reminder not cleared: %v", updated.Reminder)
	}
	if updated.Note != nil {
		t.Errorf("note not cleared: %v", updated.Note)
	}
}

func TestUpdateTaskDoneClearsReminder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Now().UTC().Add(time.Hour)
	task, err := repo.CreateTask(ctx, "ship release", &reminder, nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	updated, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{IsDone: boolPtr(true)})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if !updated.IsDone {
		t.Error("task not marked done")
	}
	if updated.Reminder != nil {
		t.Errorf("completing a task must clear its reminder, got %v", updated.Reminder)
	}
}

func TestUpdateTaskDoneWinsOverReminderInSameCall(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := createTestTask(t, repo, "conflicting update")

	reminder := time.Now().UTC().Add(time.Hour)
	updated, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{
		IsDone:      boolPtr(true),
		Reminder:    &reminder,
		ReminderSet: true,
	})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if updated.Reminder != nil {
		t.Errorf("done must win over a reminder set in the same call, got %v", updated.Reminder)
	}
}

func TestUpdateTaskReopenKeepsReminderClear(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Now().UTC().Add(time.Hour)
	task, err := repo.CreateTask(ctx, "revisit", &reminder, nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	if _, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{IsDone: boolPtr(true)}); err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	reopened, err := repo.UpdateTask(ctx, task.ID, TaskUpdate{IsDone: boolPtr(false)})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if reopened.IsDone {
		t.Error("task not reopened")
	}
	if reopened.Reminder != nil {
		t.Errorf("reopening must not resurrect the reminder, got %v", reopened.Reminder)
	}
}

func TestUpdateTaskAbsent(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)

	task, err := repo.UpdateTask(context.Background(), 42, TaskUpdate{Title: strPtr("ghost")})
	if err != nil {
		t.Fatalf("UpdateTask failed: %v", err)
	}
	if task != nil {
		t.Errorf("expected nil for unknown id, got %+v", task)
	}
}

func TestDeleteTask(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := createTestTask(t, repo, "ephemeral")

	deleted, err := repo.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if !deleted {
		t.Error("expected deletion to report true")
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got != nil {
		t.Errorf("task still present after delete: %+v", got)
	}

	deleted, err = repo.DeleteTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}
	if deleted {
		t.Error("second delete of the same id must report false")
	}
}

func TestDeleteTaskCascadesToSubtasks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	task := createTestTask(t, repo, "parent")
	sub, err := repo.CreateSubtask(ctx, task.ID, "child")
	if err != nil {
		t.Fatalf("CreateSubtask failed: %v", err)
	}

	if _, err := repo.DeleteTask(ctx, task.ID); err != nil {
		t.Fatalf("DeleteTask failed: %v", err)
	}

	got, err := repo.GetSubtask(ctx, sub.ID)
	if err != nil {
		t.Fatalf("GetSubtask failed: %v", err)
	}
	if got != nil {
		t.Errorf("subtask survived parent deletion: %+v", got)
	}

	subs, err := repo.ListSubtasks(ctx, task.ID)
	if err != nil {
		t.Fatalf("ListSubtasks failed: %v", err)
	}
	if len(subs) != 0 {
		t.Errorf("expected no subtasks after cascade, got %d", len(subs))
	}
}

func TestDoneTriggerFiresOnRawSQL(t *testing.T) {
	db := setupTestDB(t)
	repo := NewRepository(db)
	ctx := context.Background()

	reminder := time.Now().UTC().Add(time.Hour)
	task, err := repo.CreateTask(ctx, "raw write", &reminder, nil)
	if err != nil {
		t.Fatalf("CreateTask failed: %v", err)
	}

	// Bypass the repository so only the trigger can enforce the rule.
	if _, err := db.ExecContext(ctx, "UPDATE tasks SET is_done = 1 WHERE id = ?", task.ID); err != nil {
		t.Fatalf("raw update failed: %v", err)
	}

	got, err := repo.GetTask(ctx, task.ID)
	if err != nil {
		t.Fatalf("GetTask failed: %v", err)
	}
	if got.Reminder != nil {
		t.Errorf("trigger did not clear the reminder: %v", got.Reminder)
	}
}
