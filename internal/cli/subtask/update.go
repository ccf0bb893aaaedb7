package subtask

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// UpdateCmd returns the subtask update subcommand
func UpdateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Update a subtask",
		Args:  cobra.ExactArgs(1),
		RunE:  runUpdate,
	}

	cmd.Flags().String("title", "", "New title")
	cmd.Flags().Bool("done", false, "Completion state")
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
		if fmtErr := formatter.Error("INVALID_ID", fmt.Sprintf("invalid subtask id %q", args[0])); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	updated, err := cliInstance.App.TaskService.UpdateSubtask(ctx, taskservice.UpdateSubtaskRequest{
		SubtaskID: id,
		Title:     cli.StringFlagIfChanged(cmd.Flags(), "title"),
		IsDone:    cli.BoolFlagIfChanged(cmd.Flags(), "done"),
	})
	if err != nil {
		code := "SUBTASK_UPDATE_ERROR"
		switch {
		case errors.Is(err, taskservice.ErrSubtaskNotFound):
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

	fmt.Printf("Updated subtask %d: %s\n", updated.ID, updated.Title)
	return nil
}
