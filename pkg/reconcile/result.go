package reconcile

import (
	"fmt"
	"strconv"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// AllCleared is the sentinel reported as deleted_count by clear, where the
// server gives no per-key count back.
const AllCleared = "all"

// Outcome classifies the result of one remote call for one variable.
type Outcome int

// Per-key outcomes.
const (
	// OutcomeApplied means the remote accepted the change.
	OutcomeApplied Outcome = iota

	// OutcomeAlreadyAbsent means a delete target did not exist remotely.
	// Deleting something already gone counts as success.
	OutcomeAlreadyAbsent

	// OutcomeFailed means the remote call failed for any other reason.
	OutcomeFailed
)

// Result accumulates the counters for one reconciliation run.
type Result struct {
	// Operation that produced this result.
	Operation Operation

	// Variables holds the remote state for list; nil otherwise.
	Variables vars.Map

	// UpdatedCount is the number of keys successfully applied by set.
	UpdatedCount int

	// DeletedCount is the number of keys removed (or already absent) by delete.
	DeletedCount int

	// ClearedAll is set when clear succeeded.
	ClearedAll bool

	// FailedCount is the number of per-key failures.
	FailedCount int
}

// Count returns the cardinality of the listed variables.
func (r *Result) Count() int {
	return len(r.Variables)
}

// DeletedOutput renders the deleted_count output value, which is the "all"
// sentinel for clear and a plain integer for delete.
func (r *Result) DeletedOutput() string {
	if r.ClearedAll {
		return AllCleared
	}
	return strconv.Itoa(r.DeletedCount)
}

// Summary returns a human-readable one-line summary. Variable values never
// appear here.
func (r *Result) Summary() string {
	switch r.Operation {
	case OperationList:
		return fmt.Sprintf("found %d variables", r.Count())
	case OperationSet:
		return fmt.Sprintf("updated %d variables, %d failed", r.UpdatedCount, r.FailedCount)
	case OperationClear:
		return fmt.Sprintf("cleared %s variables", AllCleared)
	case OperationDelete:
		return fmt.Sprintf("deleted %d variables, %d failed", r.DeletedCount, r.FailedCount)
	default:
		return "no operation performed"
	}
}
