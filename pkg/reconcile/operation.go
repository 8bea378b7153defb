package reconcile

import (
	"strings"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

// Operation selects which reconciliation protocol a run executes. Exactly
// one operation runs per invocation.
type Operation string

// Supported operations.
const (
	// OperationList reads the remote variables without modifying anything.
	OperationList Operation = "list"

	// OperationSet applies the merged desired-state mapping.
	OperationSet Operation = "set"

	// OperationClear removes every remote variable atomically.
	OperationClear Operation = "clear"

	// OperationDelete removes the named keys one by one.
	OperationDelete Operation = "delete"
)

// ParseOperation maps the operation input onto the closed operation set.
// An empty input defaults to list, the read-only operation. An unknown name
// is a usage error naming the valid set, raised before any remote call.
func ParseOperation(input string) (Operation, error) {
	switch Operation(strings.ToLower(strings.TrimSpace(input))) {
	case "", OperationList:
		return OperationList, nil
	case OperationSet:
		return OperationSet, nil
	case OperationClear:
		return OperationClear, nil
	case OperationDelete:
		return OperationDelete, nil
	default:
		return "", errors.NewValidationError("operation", input,
			"unknown operation, expected one of: list, set, clear, delete")
	}
}

// String returns the operation name.
func (o Operation) String() string {
	return string(o)
}
