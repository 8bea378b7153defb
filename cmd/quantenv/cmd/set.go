package cmd

import (
	"github.com/spf13/cobra"
)

// NewSetCommand creates the set command with app dependencies.
func NewSetCommand(app AppContext) *cobra.Command {
	var (
		envFile   string
		jsonVars  string
		variables string
		replace   bool
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Apply environment variables",
		Long: `Set merges up to three payload sources into one desired-state mapping
and applies it to the target environment. Sources merge in a fixed order:
the env file provides the baseline, JSON provides structured overrides,
and inline variables provide final run-specific overrides.

By default each key is upserted individually and remote keys not mentioned
are left untouched (merge mode). With --replace the remote state is
overwritten atomically and any key absent from the merged mapping is
removed.

Any per-key failure fails the run, even in merge mode where every key is
still attempted first.`,
		Example: `  quantenv set --env-file .env.production
  quantenv set --json-vars '{"API_URL":"https://api.example.com"}'
  quantenv set --variables "DEPLOY_SHA=$GITHUB_SHA,BUILD=42" --replace`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// Flags override the INPUT_*/QUANT_* environment inputs.
			sources := app.Sources()
			if cmd.Flags().Changed("env-file") {
				sources.EnvFile = envFile
			}
			if cmd.Flags().Changed("json-vars") {
				sources.JSON = jsonVars
			}
			if cmd.Flags().Changed("variables") {
				sources.Inline = variables
			}

			replaceMode := app.ReplaceInput()
			if cmd.Flags().Changed("replace") {
				replaceMode = replace
			}

			return RunSet(cmd.Context(), app, sources, replaceMode)
		},
	}

	cmd.Flags().StringVar(&envFile, "env-file", "", "path to a dotenv file of baseline values")
	cmd.Flags().StringVar(&jsonVars, "json-vars", "", "JSON object of variable overrides")
	cmd.Flags().StringVar(&variables, "variables", "", "newline- or comma-delimited KEY=VALUE overrides")
	cmd.Flags().BoolVar(&replace, "replace", false, "overwrite the full remote state instead of merging")

	return cmd
}
