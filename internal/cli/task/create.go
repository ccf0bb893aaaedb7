package task

import (
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// CreateCmd returns the task create subcommand
func CreateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create <title>",
		Short: "Create a new task",
		Long:  "Create a new task with an optional reminder time and note.",
		Args:  cobra.ExactArgs(1),
		RunE:  runCreate,
	}

	cmd.Flags().String("remind-at", "", "Reminder time (format from config, default \"2006-01-02 15:04\")")
	cmd.Flags().String("note", "", "Free-text note")
	addOutputFlags(cmd)

	return cmd
}

func runCreate(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	var reminder *time.Time
	if cmd.Flags().Changed("remind-at") {
		value, _ := cmd.Flags().GetString("remind-at")
		t, err := cli.ParseDateTime(value, cliInstance.Config.DateFormat())
		if err != nil {
			if fmtErr := formatter.Error("INVALID_DATE", err.Error()); fmtErr != nil {
				return fmtErr
			}
			return cli.Handled(err)
		}
		reminder = &t
	}

	note := cli.StringFlagIfChanged(cmd.Flags(), "note")

	created, err := cliInstance.App.TaskService.CreateTask(ctx, taskservice.CreateTaskRequest{
		Title:    args[0],
		Reminder: reminder,
		Note:     note,
	})
	if err != nil {
		code := "TASK_CREATE_ERROR"
		if errors.Is(err, taskservice.ErrEmptyTitle) {
			code = "VALIDATION_ERROR"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(created)
	}

	fmt.Printf("Created task %d: %s\n", created.ID, created.Title)
	return nil
}
