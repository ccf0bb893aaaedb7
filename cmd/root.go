package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/kadyrovd/delo/internal/cli"
	"github.com/kadyrovd/delo/internal/cli/remind"
	"github.com/kadyrovd/delo/internal/cli/subtask"
	"github.com/kadyrovd/delo/internal/cli/task"
)

var rootCmd = &cobra.Command{
	Use:   "delo",
	Short: "Delo - local task tracking with subtasks and reminders",
	Long: `Delo keeps tasks, their subtasks, and due reminders in a local
SQLite database under ~/.delo.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := cli.NewCLI(cmd.Context())
		if err != nil {
			// Subcommands format their own errors; startup failures
			// happen before any formatter exists.
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return cli.Handled(err)
		}
		cmd.SetContext(cli.WithCLI(cmd.Context(), c))
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		c, err := cli.GetCLIFromContext(cmd.Context())
		if err != nil {
			return nil
		}
		return c.Close()
	},
}

func init() {
	rootCmd.AddCommand(
		task.Cmd(),
		subtask.Cmd(),
		remind.Cmd(),
	)
}

// Execute runs the root command with the given context.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}
