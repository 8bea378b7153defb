package cmd

import (
	"context"
	"io"

	"github.com/quantcdn/quant-cloud-environment-var-action/internal/cmd/output"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// RunList lists the remote variables, writes the variables and count
// outputs, and renders the mapping to stdout in the requested format.
func RunList(ctx context.Context, app AppContext, stdout io.Writer, format string) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	result, err := reconcile.New(store, app.Logger()).List(ctx)
	if err != nil {
		return err
	}

	if err := app.Reporter().Report(result); err != nil {
		return err
	}

	formatter := output.NewFormatter(output.DetectFormat(format))
	return formatter.Format(stdout, result.Variables)
}

// RunListOutputs lists the remote variables and writes the variables and
// count outputs without rendering values to stdout. Action mode uses this:
// under GitHub Actions stdout is the workflow log, so values belong only on
// the variables output channel.
func RunListOutputs(ctx context.Context, app AppContext) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	result, err := reconcile.New(store, app.Logger()).List(ctx)
	if err != nil {
		return err
	}

	return app.Reporter().Report(result)
}

// RunSet merges the payload sources and applies the desired state. A run
// with no source at all is a usage error raised before any remote call.
// Counters are reported even when the run fails, so failed_count reaches
// later pipeline steps.
func RunSet(ctx context.Context, app AppContext, sources vars.Sources, replace bool) error {
	if sources.Empty() {
		return errors.NewValidationError("variables", "",
			"set requires at least one of env_file, json_vars or variables")
	}

	desired, err := sources.Collect()
	if err != nil {
		return err
	}

	store, err := app.Store()
	if err != nil {
		return err
	}

	result, runErr := reconcile.New(store, app.Logger()).Set(ctx, desired, replace)
	if result != nil {
		if err := app.Reporter().Report(result); err != nil {
			return err
		}
	}
	return runErr
}

// RunClear removes every remote variable. Any remote error is fatal and no
// outputs are written.
func RunClear(ctx context.Context, app AppContext) error {
	store, err := app.Store()
	if err != nil {
		return err
	}

	result, err := reconcile.New(store, app.Logger()).Clear(ctx)
	if err != nil {
		return err
	}

	return app.Reporter().Report(result)
}

// RunDelete parses the key list and deletes each key independently.
// Per-key failures are reported through failed_count without failing the
// run.
func RunDelete(ctx context.Context, app AppContext, rawKeys string) error {
	keys, err := vars.ParseKeys(rawKeys)
	if err != nil {
		return err
	}

	store, err := app.Store()
	if err != nil {
		return err
	}

	result, err := reconcile.New(store, app.Logger()).Delete(ctx, keys)
	if err != nil {
		return err
	}

	return app.Reporter().Report(result)
}
