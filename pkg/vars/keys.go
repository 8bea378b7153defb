package vars

import (
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

// ParseKeys decodes the newline- or comma-delimited key list for a delete
// operation. Order and duplicates are preserved; each key is processed
// independently by the engine. An empty list is a usage error since
// deletion requires at least one key.
func ParseKeys(raw string) ([]string, error) {
	keys := splitList(raw)
	if len(keys) == 0 {
		return nil, errors.NewValidationError("keys", raw, "at least one key is required for delete")
	}
	return keys, nil
}
