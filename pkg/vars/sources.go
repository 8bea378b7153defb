package vars

import (
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/envfile"
)

// Sources holds the raw payload inputs for a set operation. Any subset may
// be present; Collect merges whichever are.
type Sources struct {
	// EnvFile is a path to a dotenv file providing baseline values.
	EnvFile string

	// JSON is a raw JSON object string providing structured overrides.
	JSON string

	// Inline is a newline- or comma-delimited KEY=VALUE list providing
	// final, run-specific overrides.
	Inline string
}

// Empty reports whether no source was provided at all. Callers treat this
// as a usage error for set; Collect itself just returns an empty map.
func (s Sources) Empty() bool {
	return s.EnvFile == "" && s.JSON == "" && s.Inline == ""
}

// Collect parses each present source and merges them in the fixed priority
// order file, then JSON, then inline, each overwriting overlapping keys
// from the previous. The order is a deliberate policy and not configurable.
func (s Sources) Collect() (Map, error) {
	merged := make(Map)

	if s.EnvFile != "" {
		fromFile, err := envfile.Load(s.EnvFile)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, fromFile)
	}

	if s.JSON != "" {
		fromJSON, err := ParseJSON(s.JSON)
		if err != nil {
			return nil, err
		}
		merged = Merge(merged, fromJSON)
	}

	if s.Inline != "" {
		merged = Merge(merged, ParseInline(s.Inline))
	}

	return merged, nil
}
