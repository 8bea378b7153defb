// Package main provides the entry point for the quantenv CLI, the binary
// behind the Quant Cloud environment-variable GitHub Action.
package main

import (
	"context"
	"os"

	"github.com/quantcdn/quant-cloud-environment-var-action/cmd/quantenv/app"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/constants"
)

// Version information populated by goreleaser.
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	application, err := app.New(version, commit, date)
	if err != nil {
		app.ExitOnError(err)
	}

	// Cancel in-flight API calls on SIGINT/SIGTERM, and bound the whole
	// run so a hung remote cannot stall the pipeline indefinitely
	ctx, cancel := app.ContextWithSignals(context.Background())
	defer cancel()

	ctx, stop := context.WithTimeout(ctx, constants.CommandTimeout)
	defer stop()

	if err := application.Execute(ctx, os.Args[1:]); err != nil {
		app.ExitOnError(err)
	}
}
