// Package task implements the `delo task` command group.
package task

import (
	"github.com/spf13/cobra"
)

// Cmd returns the task command group.
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage tasks",
	}

	cmd.AddCommand(
		CreateCmd(),
		ListCmd(),
		ShowCmd(),
		UpdateCmd(),
		DoneCmd(),
		DeleteCmd(),
	)

	return cmd
}

// addOutputFlags registers the output-mode flags shared by every subcommand.
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
