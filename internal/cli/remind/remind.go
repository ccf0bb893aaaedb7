package remind

import (
	"github.com/spf13/cobra"
)

// Cmd returns the remind command group
func Cmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Work with due reminders",
		Long:  "List reminders that have come due and acknowledge them once handled.",
	}

	cmd.AddCommand(
		DueCmd(),
		AckCmd(),
	)

	return cmd
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().Bool("json", false, "Output in JSON format")
	cmd.Flags().Bool("quiet", false, "Minimal output (IDs only)")
}
