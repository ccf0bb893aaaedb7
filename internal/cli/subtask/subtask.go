// Package subtask implements the `delo subtask` command group.
package subtask

import (
	"github.com/spf13/cobra"
)

// Cmd returns the subtask command group.
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "subtask",
		Short: "Manage the steps of a task",
	}

	cmd.AddCommand(
		AddCmd(),
		ListCmd(),
		UpdateCmd(),
		DoneCmd(),
		DeleteCmd(),
	)

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (ID only)")
}
