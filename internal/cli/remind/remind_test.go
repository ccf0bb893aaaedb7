package remind_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kadyrovd/delo/internal/cli/remind"
	"github.com/kadyrovd/delo/internal/database"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
	"github.com/kadyrovd/delo/internal/testutil"
)

func createTaskWithReminder(t *testing.T, db *sql.DB, title string, at time.Time) int {
	t.Helper()
	repo := database.NewRepository(db)
	task, err := repo.CreateTask(context.Background(), title, &at, nil)
	require.NoError(t, err)
	return task.ID
}

func TestDueCommand(t *testing.T) {
	db := testutil.SetupTestDB(t)

	past := time.Now().UTC().Add(-time.Hour)
	future := time.Now().UTC().Add(time.Hour)
	dueID := createTaskWithReminder(t, db, "overdue item", past)
	createTaskWithReminder(t, db, "future item", future)

	output, err := testutil.ExecuteCLICommand(t, db, remind.DueCmd(), []string{"--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", dueID), output)
}

func TestDueCommandEmpty(t *testing.T) {
	db := testutil.SetupTestDB(t)

	output, err := testutil.ExecuteCLICommand(t, db, remind.DueCmd(), nil)
	require.NoError(t, err)
	assert.Contains(t, output, "No reminders due")
}

func TestDueCommandAtOverride(t *testing.T) {
	db := testutil.SetupTestDB(t)

	at := time.Date(2030, 1, 1, 9, 0, 0, 0, time.Local).UTC()
	id := createTaskWithReminder(t, db, "new year chore", at)

	output, err := testutil.ExecuteCLICommand(t, db, remind.DueCmd(),
		[]string{"--at", "2030-01-01 09:00", "--quiet"})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("%d\n", id), output)
}

func TestAckCommand(t *testing.T) {
	db := testutil.SetupTestDB(t)

	past := time.Now().UTC().Add(-time.Minute)
	id := createTaskWithReminder(t, db, "acknowledge me", past)

	_, err := testutil.ExecuteCLICommand(t, db, remind.AckCmd(),
		[]string{fmt.Sprintf("%d", id)})
	require.NoError(t, err)

	repo := database.NewRepository(db)
	got, err := repo.GetTask(context.Background(), id)
	require.NoError(t, err)
	assert.Nil(t, got.Reminder)

	_, err = testutil.ExecuteCLICommand(t, db, remind.AckCmd(), []string{"999"})
	assert.ErrorIs(t, err, taskservice.ErrTaskNotFound)
}
