package task

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/cli/styles"
	taskservice "github.com/kadyrovd/delo/internal/services/task"
)

// ShowCmd returns the task show subcommand
func ShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Show a task with its subtasks and progress",
		Args:  cobra.ExactArgs(1),
		RunE:  runShow,
	}

	addOutputFlags(cmd)

	return cmd
}

func runShow(cmd *cobra.Command, args []string) error {
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
	svc := cliInstance.App.TaskService

	t, err := svc.GetTask(ctx, id)
	if err != nil {
		code := "TASK_FETCH_ERROR"
		if errors.Is(err, taskservice.ErrTaskNotFound) {
			code = "NOT_FOUND"
		}
		if fmtErr := formatter.Error(code, err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	subtasks, err := svc.ListSubtasks(ctx, id)
	if err != nil {
		if fmtErr := formatter.Error("SUBTASK_FETCH_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	progress, err := svc.SubtaskProgress(ctx, id)
	if err != nil {
		if fmtErr := formatter.Error("PROGRESS_ERROR", err.Error()); fmtErr != nil {
			return fmtErr
		}
		return cli.Handled(err)
	}

	if quietMode || jsonOutput {
		return formatter.Success(map[string]interface{}{
			"task":     t,
			"subtasks": subtasks,
			"progress": progress,
		})
	}

	fmt.Printf("%s %s\n", styles.Checkbox(t.IsDone), styles.TitleStyle.Render(t.Title))
	fmt.Printf("  id:       %d\n", t.ID)
	fmt.Printf("  created:  %s\n", t.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Printf("  updated:  %s\n", t.UpdatedAt.Local().Format("2006-01-02 15:04"))
	if t.HasReminder() {
		fmt.Printf("  reminder: %s\n", styles.ReminderStyle.Render(t.Reminder.Local().Format("2006-01-02 15:04")))
	}
	if t.Note != nil && *t.Note != "" {
		fmt.Println()
		rendered, err := glamour.Render(*t.Note, "auto")
		if err != nil {
			// Fall back to the raw note when the terminal renderer fails
			fmt.Println(*t.Note)
		} else {
			fmt.Print(rendered)
		}
	}
	if len(subtasks) > 0 {
		fmt.Printf("\n  Steps (%d/%d):\n", progress.Completed, progress.Total)
		for _, s := range subtasks {
			fmt.Printf("  %s\n", styles.SubtaskLine(s))
		}
	}
	return nil
}
