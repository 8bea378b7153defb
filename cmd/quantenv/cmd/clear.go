package cmd

import (
	"github.com/spf13/cobra"
)

// NewClearCommand creates the clear command with app dependencies.
func NewClearCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove all environment variables",
		Long: `Clear removes every variable from the target environment with a single
atomic call. The server returns no per-key count, so deleted_count reports
the literal "all". Any remote error aborts the run.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunClear(cmd.Context(), app)
		},
	}
}
