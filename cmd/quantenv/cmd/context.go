// Package cmd implements the quantenv subcommands. Each command receives
// its dependencies through the AppContext interface rather than the
// concrete App type, allowing tests to substitute fakes.
package cmd

import (
	"github.com/rs/zerolog"

	"github.com/quantcdn/quant-cloud-environment-var-action/internal/github"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// AppContext defines what commands need from the application.
type AppContext interface {
	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// Store validates the target inputs and returns the remote store
	// scoped to the configured environment.
	Store() (reconcile.RemoteStore, error)

	// Reporter returns the GitHub outputs reporter.
	Reporter() *github.Reporter

	// OutputFormat returns the configured stdout format for list.
	OutputFormat() string

	// Sources returns the set-operation payload sources from the inputs.
	Sources() vars.Sources

	// KeysInput returns the raw delete key-list input.
	KeysInput() string

	// ReplaceInput returns the replace flag input.
	ReplaceInput() bool

	// Version returns the application version string.
	Version() string

	// Commit returns the git commit hash.
	Commit() string

	// Date returns the build date.
	Date() string
}
