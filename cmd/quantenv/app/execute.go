package app

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	quantcmd "github.com/quantcdn/quant-cloud-environment-var-action/cmd/quantenv/cmd"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
)

// Execute runs the quantenv CLI application with the given arguments.
// This is the main entry point called from main.go.
func (a *App) Execute(ctx context.Context, args []string) error {
	rootCmd := a.createRootCommand()
	rootCmd.SetArgs(args)
	return rootCmd.ExecuteContext(ctx)
}

// createRootCommand creates the root cobra command with all subcommands.
// Invoked without a subcommand the root runs in action mode, dispatching
// on the operation input the way the GitHub Action does.
func (a *App) createRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "quantenv",
		Short:   "Manage Quant Cloud environment variables",
		Version: a.version,
		Long: `Quantenv reconciles environment-variable state against a Quant Cloud
application environment. It backs the quant-cloud-environment-var-action
GitHub Action and can also be run directly.

Inputs may be passed as flags, INPUT_* environment variables (the GitHub
Actions convention), QUANT_* environment variables, or a local .env file.`,
		RunE:              a.runOperation,
		PersistentPreRunE: a.setupCommand,
		SilenceUsage:      true,
		SilenceErrors:     true,
	}

	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&a.config.Verbose, "verbose", "v", false, "verbose output (shortcut for --log-level=debug)")
	rootCmd.PersistentFlags().BoolVarP(&a.config.Quiet, "quiet", "q", false, "minimal output (shortcut for --log-level=warn)")
	rootCmd.PersistentFlags().BoolVar(&a.config.NoColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVarP(&a.config.Format, "format", "o", "", "stdout format for list: table, json, yaml")
	rootCmd.PersistentFlags().StringVar(&a.config.LogLevel, "log-level", "", "log level: trace, debug, info, warn, error (overrides -v/-q)")

	// API target flags
	rootCmd.PersistentFlags().StringVar(&a.config.APIKey, "api-key", a.config.APIKey, "Quant Cloud API key")
	rootCmd.PersistentFlags().StringVar(&a.config.Organization, "organization", a.config.Organization, "organization identifier")
	rootCmd.PersistentFlags().StringVar(&a.config.Application, "application", a.config.Application, "application identifier")
	rootCmd.PersistentFlags().StringVar(&a.config.Environment, "environment", a.config.Environment, "environment identifier")
	rootCmd.PersistentFlags().StringVar(&a.config.BaseURL, "base-url", a.config.BaseURL, "API base URL override")

	// Action-mode operation selection
	rootCmd.Flags().StringVar(&a.config.Operation, "operation", a.config.Operation, "operation to run: list, set, clear, delete")

	rootCmd.SetVersionTemplate("quantenv {{.Version}}\n")

	a.registerCommands(rootCmd)

	return rootCmd
}

// runOperation is the action-mode dispatch: no subcommand given, so the
// operation input decides what runs. An unknown name is a usage error
// naming the valid set, raised before any remote call.
func (a *App) runOperation(cmd *cobra.Command, _ []string) error {
	operation, err := reconcile.ParseOperation(a.config.Operation)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	switch operation {
	case reconcile.OperationSet:
		return quantcmd.RunSet(ctx, a, a.Sources(), a.ReplaceInput())
	case reconcile.OperationClear:
		return quantcmd.RunClear(ctx, a)
	case reconcile.OperationDelete:
		return quantcmd.RunDelete(ctx, a, a.KeysInput())
	default:
		// Stdout is the workflow log here, so values stay off it; the
		// list subcommand keeps the stdout rendering for direct use.
		return quantcmd.RunListOutputs(ctx, a)
	}
}

// setupCommand is called before any command runs.
func (a *App) setupCommand(cmd *cobra.Command, _ []string) error {
	verbose := mustGetBool(cmd, "verbose")
	quiet := mustGetBool(cmd, "quiet")
	noColor := mustGetBool(cmd, "no-color")
	format := mustGetString(cmd, "format")
	logLevel := mustGetString(cmd, "log-level")

	a.config.UpdateFromFlags(verbose, quiet, noColor, format, logLevel)

	// Reinitialize logger with updated config
	logger := NewLogger(a.config)
	a.logger = &logger

	return nil
}

// registerCommands registers all subcommands with the root command.
func (a *App) registerCommands(rootCmd *cobra.Command) {
	rootCmd.AddCommand(quantcmd.NewListCommand(a))
	rootCmd.AddCommand(quantcmd.NewSetCommand(a))
	rootCmd.AddCommand(quantcmd.NewClearCommand(a))
	rootCmd.AddCommand(quantcmd.NewDeleteCommand(a))
	rootCmd.AddCommand(quantcmd.NewVersionCommand(a))
}

// ExitOnError is a helper that prints an error and exits with status 1.
// This is meant to be used in main.go for top-level error handling.
func ExitOnError(err error) {
	if err != nil {
		//nolint:errcheck // Ignoring write error since we're exiting anyway
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

// mustGetBool retrieves a boolean flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetBool(cmd *cobra.Command, name string) bool {
	val, err := cmd.Flags().GetBool(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}

// mustGetString retrieves a string flag value or panics if the flag doesn't exist.
// This should only be used for flags defined in this package.
func mustGetString(cmd *cobra.Command, name string) string {
	val, err := cmd.Flags().GetString(name)
	if err != nil {
		panic("programming error: failed to get flag " + name + ": " + err.Error())
	}
	return val
}
