package subtask

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// AddCmd returns the subtask add subcommand
func AddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <task-id> <title>",
		Short: "Add a subtask to a task",
		Args:  cobra.ExactArgs(2),
		RunE:  runAdd,
	}

	addOutputFlags(cmd)

	return cmd
}

func runAdd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	taskID, err := strconv.Atoi(args[0])
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

	created, err := cliInstance.App.TaskService.CreateSubtask(ctx, taskservice.CreateSubtaskRequest{
		TaskID: taskID,
		Title:  args[1],
	})
	if err != nil {
		code := "SUBTASK_CREATE_ERROR"
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
		return formatter.Success(created)
	}

	fmt.Printf("Added subtask %d to task %d: %s\n", created.ID, created.TaskID, created.Title)
	return nil
}
