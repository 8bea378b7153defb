package cmd

import (
	"github.com/spf13/cobra"
)

// NewDeleteCommand creates the delete command with app dependencies.
func NewDeleteCommand(app AppContext) *cobra.Command {
	var keys string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Delete environment variables by key",
		Long: `Delete removes the named keys from the target environment, one call per
key. A key that is already absent counts as deleted. Per-key failures are
counted in failed_count and do not fail the run.`,
		Example: `  quantenv delete --keys "OLD_FLAG,LEGACY_URL"`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			raw := app.KeysInput()
			if cmd.Flags().Changed("keys") {
				raw = keys
			}
			return RunDelete(cmd.Context(), app, raw)
		},
	}

	cmd.Flags().StringVar(&keys, "keys", "", "newline- or comma-delimited keys to delete")

	return cmd
}
