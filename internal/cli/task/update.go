package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// UpdateCmd returns the task update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a task",
		Long: `Update fields of a task. Only supplied flags change anything:
pass --remind-at none to clear the reminder, --clear-note to drop the note.`,
		Args: cobra.ExactArgs(1),
		RunE: runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Bool("done", false, "Completion state")
	cmd.Flags().String("remind-at", "", "Reminder time, or \"none\" to clear")
	cmd.Flags().String("note", "", "New note text")
	cmd.Flags().Bool("clear-note", false, "Remove the note")
	addOutputFlags(cmd)

	return cmd
}

func runUpdate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	id, err := strconv.Atoi(args[0])
	if err != nil {
		if fmtErr := formatter.Error("INVALID_ID", fmt.Sprintf("invalid task id %q", args[0])); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	reminder, reminderSet, err := cli.ReminderFromFlags(cmd.Flags(), "remind-at", cliInstance.Config.DateFormat())
	if err != nil {
		if fmtErr := formatter.Error("INVALID_DATE", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	req := taskservice.UpdateTaskRequest{
		TaskID:      id,
		Title:       cli.StringFlagIfChanged(cmd.Flags(), "title"),
		IsDone:      cli.BoolFlagIfChanged(cmd.Flags(), "done"),
		Reminder:    reminder,
		ReminderSet: reminderSet,
	}
	if clearNote, _ := cmd.Flags().GetBool("clear-note"); clearNote {
		req.NoteSet = true
	} else if note := cli.StringFlagIfChanged(cmd.Flags(), "note"); note != nil {
		req.Note = note
		req.NoteSet = true
	}

	updated, err := cliInstance.App.TaskService.UpdateTask(ctx, req)
	if err != nil {
		code := "TASK_UPDATE_ERROR"
		switch {
		case errors.Is(err, taskservice.ErrTaskNotFound):
			code = "NOT_FOUND"
		case errors.Is(err, taskservice.ErrEmptyTitle):
			code = "VALIDATION_ERROR"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(updated)
	}

	fmt.Printf("Updated task %d: %s\n", updated.ID, updated.Title)
	return nil
}
