package task

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/cli/styles"
	"github.com/kadyrovd/delo/internal/models"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// ListCmd returns the task list subcommand
func ListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tasks",
		Long:  "List tasks newest first, with optional filters combined with AND.",
		RunE:  runList,
	}

	cmd.Flags().String("search", "", "Filter by substring match on the title")
	cmd.Flags().Bool("done", false, "Filter by completion state (--done=false for pending)")
	cmd.Flags().Bool("has-reminder", false, "Filter by reminder presence (--has-reminder=false for none)")
	addOutputFlags(cmd)

	return cmd
}

func runList(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	tasks, err := cliInstance.App.TaskService.ListTasks(ctx, taskservice.ListTasksRequest{
		Search:      cli.StringFlagIfChanged(cmd.Flags(), "search"),
		IsDone:      cli.BoolFlagIfChanged(cmd.Flags(), "done"),
		HasReminder: cli.BoolFlagIfChanged(cmd.Flags(), "has-reminder"),
	})
	if err != nil {
		if fmtErr := formatter.Error("TASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode {
		for _, t := range tasks {
			fmt.Printf("%d\n", t.ID)
		}
		return nil
	}

	if jsonOutput {
		return json.NewEncoder(os.Stdout).Encode(map[string]interface{}{
			"success": true,
			"tasks":   tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	for _, t := range tasks {
		progress, err := cliInstance.App.TaskService.SubtaskProgress(ctx, t.ID)
		if err != nil {
			progress = models.Progress{}
		}
		fmt.Println(styles.TaskLine(t, progress))
	}
	return nil
}
