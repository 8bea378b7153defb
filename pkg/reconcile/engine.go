// Package reconcile drives the remote environment-variable store through
// the list, set, clear, and delete protocols, classifying each remote
// outcome and accumulating success and failure counters.
//
// Failure policy differs per operation and is deliberate: list, clear, and
// replace-mode set fail the run on the first remote error; merge-mode set
// attempts every key but still fails the run when any key failed; delete
// attempts every key and tolerates per-key failures entirely, surfacing
// them only through failed_count.
package reconcile

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/logging"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// RemoteStore is the remote collaborator holding one environment's
// variables. Implementations classify HTTP failures into the error
// taxonomy; in particular a missing delete target must satisfy
// errors.IsNotFound.
type RemoteStore interface {
	// List returns the current remote variables.
	List(ctx context.Context) (vars.Map, error)

	// Replace atomically overwrites the full remote state with desired.
	// Any remote key not present in desired is removed.
	Replace(ctx context.Context, desired vars.Map) error

	// Update upserts a single key, leaving all others untouched.
	Update(ctx context.Context, key, value string) error

	// Delete removes a single key.
	Delete(ctx context.Context, key string) error
}

// Engine executes one operation per run against a RemoteStore. Calls are
// strictly sequential; the only state mutated is the in-memory counters of
// the Result being built.
type Engine struct {
	store  RemoteStore
	logger *zerolog.Logger
}

// New creates an engine for the given store.
func New(store RemoteStore, logger *zerolog.Logger) *Engine {
	if logger == nil {
		logger = logging.Default()
	}
	return &Engine{store: store, logger: logger}
}

// List retrieves the remote variables verbatim. Any remote error is fatal.
func (e *Engine) List(ctx context.Context) (*Result, error) {
	remote, err := e.store.List(ctx)
	if err != nil {
		return nil, err
	}

	e.logger.Info().Int("count", len(remote)).Msg("Listed environment variables")
	return &Result{Operation: OperationList, Variables: remote}, nil
}

// Set applies the merged desired-state mapping. In replace mode the remote
// ends up exactly equal to desired via one atomic bulk call; in merge mode
// each key is upserted independently and remote keys not mentioned are left
// untouched.
//
// A replace failure is fatal and reports every key as failed. Merge mode
// attempts every key, but any per-key failure still fails the run as a
// whole; this asymmetry with Delete is intentional.
func (e *Engine) Set(ctx context.Context, desired vars.Map, replace bool) (*Result, error) {
	if replace {
		return e.replaceAll(ctx, desired)
	}
	return e.mergeEach(ctx, desired)
}

// replaceAll performs the single atomic full-state overwrite.
func (e *Engine) replaceAll(ctx context.Context, desired vars.Map) (*Result, error) {
	result := &Result{Operation: OperationSet}

	if err := e.store.Replace(ctx, desired); err != nil {
		result.FailedCount = len(desired)
		return result, fmt.Errorf("replacing environment variables: %w", err)
	}

	result.UpdatedCount = len(desired)
	e.logger.Info().
		Int("updated", result.UpdatedCount).
		Strs("keys", desired.Names()).
		Msg("Replaced environment variables")
	return result, nil
}

// mergeEach upserts every key independently, continuing past failures.
func (e *Engine) mergeEach(ctx context.Context, desired vars.Map) (*Result, error) {
	result := &Result{Operation: OperationSet}

	for _, key := range desired.Names() {
		err := e.store.Update(ctx, key, desired[key])
		switch classify(err) {
		case OutcomeApplied:
			result.UpdatedCount++
			e.logger.Debug().Str("key", key).Msg("Updated variable")
		default:
			result.FailedCount++
			e.logger.Warn().Err(err).Str("key", key).Msg("Failed to update variable")
		}
	}

	if result.FailedCount > 0 {
		return result, fmt.Errorf("%d of %d variables failed to apply",
			result.FailedCount, result.UpdatedCount+result.FailedCount)
	}
	return result, nil
}

// Clear removes every remote variable with one atomic bulk call. Any error
// is fatal; on success the server reports no per-key count, so the result
// carries the "all" sentinel.
func (e *Engine) Clear(ctx context.Context) (*Result, error) {
	if err := e.store.Replace(ctx, vars.Map{}); err != nil {
		return nil, fmt.Errorf("clearing environment variables: %w", err)
	}

	e.logger.Info().Msg("Cleared all environment variables")
	return &Result{Operation: OperationClear, ClearedAll: true}, nil
}

// Delete removes each key independently. A key that is already absent
// counts as deleted; other failures are counted and skipped. Per-key
// failures never fail the run, unlike merge-mode Set: failed_count alone
// communicates them to the caller.
func (e *Engine) Delete(ctx context.Context, keys []string) (*Result, error) {
	result := &Result{Operation: OperationDelete}

	for _, key := range keys {
		err := e.store.Delete(ctx, key)
		switch classify(err) {
		case OutcomeApplied:
			result.DeletedCount++
			e.logger.Debug().Str("key", key).Msg("Deleted variable")
		case OutcomeAlreadyAbsent:
			result.DeletedCount++
			e.logger.Debug().Str("key", key).Msg("Variable already absent, counting as deleted")
		case OutcomeFailed:
			result.FailedCount++
			e.logger.Warn().Err(err).Str("key", key).Msg("Failed to delete variable")
		}
	}

	return result, nil
}

// classify maps a remote call error onto the closed per-key outcome set.
func classify(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeApplied
	case errors.IsNotFound(err):
		return OutcomeAlreadyAbsent
	default:
		return OutcomeFailed
	}
}
