// Package github maps reconciliation results onto the GitHub Actions
// output channel. Named outputs go to the $GITHUB_OUTPUT file for later
// pipeline steps; the log stream only ever sees variable names and counts,
// never values.
package github

import (
	"os"
	"strconv"

	"github.com/rs/zerolog"
	"github.com/sethvargo/go-githubactions"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/logging"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
)

// Output names declared in action.yml.
const (
	OutputVariables    = "variables"
	OutputCount        = "count"
	OutputUpdatedCount = "updated_count"
	OutputDeletedCount = "deleted_count"
	OutputFailedCount  = "failed_count"
)

// Reporter writes named outputs once per run.
type Reporter struct {
	action  *githubactions.Action
	enabled bool
	logger  *zerolog.Logger
}

// NewReporter creates a reporter. Outputs are only written when running
// under GitHub Actions (GITHUB_OUTPUT set); local runs just log.
func NewReporter(logger *zerolog.Logger) *Reporter {
	if logger == nil {
		logger = logging.Default()
	}
	return &Reporter{
		action:  githubactions.New(),
		enabled: os.Getenv("GITHUB_OUTPUT") != "",
		logger:  logger,
	}
}

// MaskSecret registers a value to be masked in the workflow log.
func (r *Reporter) MaskSecret(value string) {
	if r.enabled && value != "" {
		r.action.AddMask(value)
	}
}

// Report writes the outputs for the operation that ran. Counters are
// written even when the run is about to be marked failed, so failed_count
// reaches later pipeline steps.
func (r *Reporter) Report(result *reconcile.Result) error {
	switch result.Operation {
	case reconcile.OperationList:
		serialized, err := result.Variables.JSON()
		if err != nil {
			return err
		}
		r.set(OutputVariables, serialized)
		r.set(OutputCount, strconv.Itoa(result.Count()))
		r.logger.Info().
			Int("count", result.Count()).
			Strs("keys", result.Variables.Names()).
			Msg("Reported variables output")

	case reconcile.OperationSet:
		r.set(OutputUpdatedCount, strconv.Itoa(result.UpdatedCount))
		r.set(OutputFailedCount, strconv.Itoa(result.FailedCount))

	case reconcile.OperationClear:
		r.set(OutputDeletedCount, result.DeletedOutput())
		r.set(OutputFailedCount, strconv.Itoa(result.FailedCount))

	case reconcile.OperationDelete:
		r.set(OutputDeletedCount, result.DeletedOutput())
		r.set(OutputFailedCount, strconv.Itoa(result.FailedCount))
	}

	return nil
}

// set writes one named output, or logs it when not running under Actions.
func (r *Reporter) set(name, value string) {
	if r.enabled {
		r.action.SetOutput(name, value)
		return
	}
	// The variables output holds values; keep it out of the local log too.
	if name == OutputVariables {
		r.logger.Debug().Str("output", name).Msg("Skipping output outside GitHub Actions")
		return
	}
	r.logger.Info().Str("output", name).Str("value", value).Msg("Output")
}
