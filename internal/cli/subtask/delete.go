package subtask

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// DeleteCmd returns the subtask delete subcommand
func DeleteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a subtask",
		Args:  cobra.ExactArgs(1),
		RunE:  runDelete,
	}

	addOutputFlags(cmd)

	return cmd
}

func runDelete(cmd *cobra.Command, args []string) error {
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

	if err := cliInstance.App.TaskService.DeleteSubtask(ctx, id); err != nil {
		code := "SUBTASK_DELETE_ERROR"
		if errors.Is(err, taskservice.ErrSubtaskNotFound) {
			code = "NOT_FOUND"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode {
		fmt.Printf("%d\n", id)
		return nil
	}
	if jsonOutput {
		return formatter.Success(map[string]interface{}{"deleted": id})
	}

	fmt.Printf("Deleted subtask %d\n", id)
	return nil
}
