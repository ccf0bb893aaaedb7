package subtask

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/cli/styles"
)

// ListCmd returns the subtask list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list <task-id>",
		Short: "List the subtasks of a task in step order",
		Args:  cobra.ExactArgs(1),
		RunE:  runList,
	}

	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
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
	svc := cliInstance.App.TaskService

	subtasks, err := svc.ListSubtasks(ctx, taskID)
	if err != nil {
		if fmtErr := formatter.Error("SUBTASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode {
		for _, s := range subtasks {
			fmt.Printf("%d\n", s.ID)
		}
		return nil
	}

	if jsonOutput {
		progress, err := svc.SubtaskProgress(ctx, taskID)
		if err != nil {
			if fmtErr := formatter.Error("PROGRESS_ERROR", err.Error()); fmtErr != nil {
				return fmtErr
			}
			return cli.Handled(err)
		}
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success":  true,
			"subtasks": subtasks,
			"progress": progress,
		})
	}

	if len(subtasks) == 0 {
		fmt.Println("No subtasks found")
		return nil
	}

	for _, s := range subtasks {
		fmt.Println(styles.SubtaskLine(s))
	}
	return nil
}
