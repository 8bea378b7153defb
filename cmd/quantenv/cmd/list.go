package cmd

import (
	"github.com/spf13/cobra"
)

// NewListCommand creates the list command with app dependencies.
func NewListCommand(app AppContext) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List environment variables",
		Long: `List retrieves the current variables of the target environment.

The mapping is written to stdout in the chosen format and, under GitHub
Actions, to the variables and count outputs. Variable values never appear
in the log stream.`,
		Example: `  quantenv list --organization acme --application site --environment production
  quantenv list -o json | jq keys`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return RunList(cmd.Context(), app, cmd.OutOrStdout(), app.OutputFormat())
		},
	}
}
