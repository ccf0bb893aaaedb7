package remind

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/cli/styles"
)

// DueCmd returns the remind due subcommand
func DueCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "due",
		Short: "List tasks whose reminder has come due",
		Long:  "List pending tasks with a reminder at or before now, oldest reminder first.",
		RunE:  runDue,
	}

	cmd.Flags().String("at", "", "Check against this time instead of now")
	addOutputFlags(cmd)

	return cmd
}

func runDue(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	jsonOutput, _ := cmd.Flags().GetBool("json")
	quietMode, _ := cmd.Flags().GetBool("quiet")
	formatter := &cli.OutputFormatter{JSON: jsonOutput, Quiet: quietMode}

	cliInstance, err := cli.GetCLIFromContext(ctx)
	if err != nil {
		return err
	}

	at := time.Now()
	if cmd.Flags().Changed("at") {
		value, _ := cmd.Flags().GetString("at")
		at, err = cli.ParseDateTime(value, cliInstance.Config.DateFormat())
		if err != nil {
			if fmtErr := formatter.Error("INVALID_DATE", err.Error()); fmtErr != nil {
				return fmtErr
			}
			return cli.Handled(err)
		}
	}

	tasks, err := cliInstance.App.TaskService.DueReminders(ctx, at)
	if err != nil {
		if fmtErr := formatter.Error("REMINDER_FETCH_ERROR", err.Error()); fmtErr != nil {
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
			"success":   true,
			"reminders": tasks,
		})
	}

	if len(tasks) == 0 {
		fmt.Println("No reminders due")
		return nil
	}

	for _, t := range tasks {
		when := ""
		if t.Reminder != nil {
			when = t.Reminder.Local().Format(cliInstance.Config.DateFormat())
		}
		fmt.Printf("%d  %s  %s\n", t.ID, styles.ReminderStyle.Render(when), t.Title)
	}
	return nil
}
