package task_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadyrovd/delo/internal/cli/task"
	"github.com/kadyrovd/delo/internal/database"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
	"github.com/kadyrovd/delo/internal/testutil"
)

func TestCreateCommand(t *testing.T) {
	db := testutil.SetupTestDB(t)

	output, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(), []string{"write release notes"})
	require.NoError(t, err)
	assert.Contains(t, output, "Created task")
	assert.Contains(t, output, "write release notes")

	repo := database.NewRepository(db)
	tasks, err := repo.ListTasks(context.Background(), database.ListTasksFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, "write release notes", tasks[0].Title)
}

func TestCreateCommandQuietPrintsID(t *testing.T) {
	db := testutil.SetupTestDB(t)

	output, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(), []string{"quiet task", "--quiet"})
	require.NoError(t, err)

	repo := database.NewRepository(db)
	tasks, err := repo.ListTasks(context.Background(), database.ListTasksFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.Equal(t, fmt.Sprintf("%d\n", tasks[0].ID), output)
}

func TestCreateCommandJSON(t *testing.T) {
	db := testutil.SetupTestDB(t)

	output, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(), []string{"json task", "--json"})
	require.NoError(t, err)

	result := testutil.ParseJSON(t, output)
	assert.Equal(t, true, result["success"])
	data, ok := result["data"].(map[string]interface{})
	require.True(t, ok, "data payload missing: %s", output)
	assert.Equal(t, "json task", data["title"])
}

func TestCreateCommandRejectsBlankTitle(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(), []string{"   "})
	assert.ErrorIs(t, err, taskservice.ErrEmptyTitle)
}

func TestCreateCommandRejectsBadDate(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(),
		[]string{"dated", "--remind-at", "next tuesday"})
	assert.Error(t, err)
}

func TestListCommandOrdersNewestFirst(t *testing.T) {
	db := testutil.SetupTestDB(t)
	testutil.CreateTestTask(t, db, "older")
	testutil.CreateTestTask(t, db, "newer")

	output, err := testutil.ExecuteCLICommand(t, db, task.ListCmd(), nil)
	require.NoError(t, err)

	newerIdx := strings.Index(output, "newer")
	olderIdx := strings.Index(output, "older")
	require.GreaterOrEqual(t, newerIdx, 0, "output: %s", output)
	require.GreaterOrEqual(t, olderIdx, 0, "output: %s", output)
	assert.Less(t, newerIdx, olderIdx, "newest task must print first")
}

func TestListCommandFiltersByDone(t *testing.T) {
	db := testutil.SetupTestDB(t)
	pending := testutil.CreateTestTask(t, db, "pending work")
	finished := testutil.CreateTestTask(t, db, "finished work")

	repo := database.NewRepository(db)
	done := true
	_, err := repo.UpdateTask(context.Background(), finished.ID, database.TaskUpdate{IsDone: &done})
	require.NoError(t, err)

	output, err := testutil.ExecuteCLICommand(t, db, task.ListCmd(), []string{"--done=false", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", pending.ID), output)
}

func TestDoneCommandClearsReminder(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(),
		[]string{"remindful", "--remind-at", "2030-01-01 09:00"})
	require.NoError(t, err)

	repo := database.NewRepository(db)
	tasks, err := repo.ListTasks(context.Background(), database.ListTasksFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	require.NotNil(t, tasks[0].Reminder)

	_, err = testutil.ExecuteCLICommand(t, db, task.DoneCmd(),
		[]string{fmt.Sprintf("%d", tasks[0].ID)})
	require.NoError(t, err)

	got, err := repo.GetTask(context.Background(), tasks[0].ID)
	require.NoError(t, err)
	assert.True(t, got.IsDone)
	assert.Nil(t, got.Reminder)
}

func TestUpdateCommandClearsReminderWithNone(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := testutil.ExecuteCLICommand(t, db, task.CreateCmd(),
		[]string{"to clear", "--remind-at", "2030-01-01 09:00"})
	require.NoError(t, err)

	repo := database.NewRepository(db)
	tasks, err := repo.ListTasks(context.Background(), database.ListTasksFilter{})
	require.NoError(t, err)
	require.Len(t, tasks, 1)

	_, err = testutil.ExecuteCLICommand(t, db, task.UpdateCmd(),
		[]string{fmt.Sprintf("%d", tasks[0].ID), "--remind-at", "none"})
	require.NoError(t, err)

	got, err := repo.GetTask(context.Background(), tasks[0].ID)
	require.NoError(t, err)
	assert.Nil(t, got.Reminder)
}

func TestDeleteCommandNotFound(t *testing.T) {
	db := testutil.SetupTestDB(t)

	_, err := testutil.ExecuteCLICommand(t, db, task.DeleteCmd(), []string{"999"})
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
}

func TestShowCommandIncludesSubtasks(t *testing.T) {
	db := testutil.SetupTestDB(t)
	parent := testutil.CreateTestTask(t, db, "parent task")
	testutil.CreateTestSubtask(t, db, parent.ID, "child step")

	output, err := testutil.ExecuteCLICommand(t, db, task.ShowCmd(),
		[]string{fmt.Sprintf("%d", parent.ID)})
	require.NoError(t, err)
	assert.Contains(t, output, "parent task")
	assert.Contains(t, output, "child step")
}
