package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// DoneCmd returns the task done subcommand
func DoneCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "done <id>",
		Short: "Mark a task as done (clears any pending reminder)",
		Args:  cobra.ExactArgs(1),
		RunE:  runDone,
	}

	cmd.Flags().Bool("undo", false, "Mark the task as not done instead")
	addOutputFlags(cmd)

	return cmd
}

func runDone(cmd *cobra.Command, args []string) error {
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

	undo, _ := cmd.Flags().GetBool("undo")
	isDone := !undo

	updated, err := cliInstance.App.TaskService.UpdateTask(ctx, taskservice.UpdateTaskRequest{
		TaskID: id,
		IsDone: &isDone,
	})
	if err != nil {
		code := "TASK_UPDATE_ERROR"
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			code = "NOT_FOUND"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(updated)
	}

	if updated.IsDone {
		fmt.Printf("Done: %s\n", updated.Title)
	} else {
		fmt.Printf("Reopened: %s\n", updated.Title)
	}
	return nil
}
