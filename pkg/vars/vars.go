// Package vars defines the desired-state variable mapping and the parsers
// that build it from the action's payload inputs. Three differently shaped
// sources are supported: a dotenv file, a JSON object string, and an inline
// delimited KEY=VALUE list. They merge in that fixed order with later
// sources overwriting earlier ones.
package vars

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

// Map is the desired-state mapping of variable names to values. Values may
// be empty; an empty value is distinct from an absent key.
type Map map[string]string

// Merge folds the given maps left to right into a fresh map, with later
// maps overwriting overlapping keys.
func Merge(maps ...Map) Map {
	merged := make(Map)
	for _, m := range maps {
		for k, v := range m {
			merged[k] = v
		}
	}
	return merged
}

// Names returns the sorted variable names. Used for logging, where values
// must never appear.
func (m Map) Names() []string {
	names := make([]string, 0, len(m))
	for k := range m {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// JSON renders the map as a canonical JSON object.
func (m Map) JSON() (string, error) {
	data, err := json.Marshal(m)
	if err != nil {
		return "", errors.WrapParse("json", "", err)
	}
	return string(data), nil
}

// ParseJSON decodes a JSON object of variable values. The top level must be
// an object; scalar values are coerced to strings the way the inputs
// contract documents, while nested arrays and objects are rejected.
func ParseJSON(raw string) (Map, error) {
	var decoded map[string]any
	if err := json.Unmarshal([]byte(raw), &decoded); err != nil {
		return nil, errors.NewParseError("json", "", "json_vars must be a JSON object of string values", err)
	}
	// A null top level unmarshals into a nil map without error.
	if decoded == nil {
		return nil, errors.NewParseError("json", "", "json_vars must be a JSON object of string values", nil)
	}

	result := make(Map, len(decoded))
	for key, value := range decoded {
		switch v := value.(type) {
		case string:
			result[key] = v
		case float64:
			result[key] = strconv.FormatFloat(v, 'f', -1, 64)
		case bool:
			result[key] = strconv.FormatBool(v)
		default:
			return nil, errors.NewParseError("json", "",
				"value for key "+key+" is not a string", nil)
		}
	}
	return result, nil
}

// ParseInline decodes a newline- or comma-delimited KEY=VALUE list. Only
// the first = in a fragment delimits the key; the value may contain more.
// Blank fragments and fragments without an = are skipped.
func ParseInline(raw string) Map {
	result := make(Map)
	for _, fragment := range splitList(raw) {
		idx := strings.Index(fragment, "=")
		if idx < 0 {
			continue
		}
		key := strings.TrimSpace(fragment[:idx])
		if key == "" {
			continue
		}
		result[key] = strings.TrimSpace(fragment[idx+1:])
	}
	return result
}

// splitList splits delimited input on newlines or commas and trims each
// fragment, dropping blanks. Shared by the inline and key-list parsers.
func splitList(raw string) []string {
	fragments := strings.FieldsFunc(raw, func(r rune) bool {
		return r == '\n' || r == ','
	})

	out := make([]string, 0, len(fragments))
	for _, f := range fragments {
		f = strings.TrimSpace(f)
		if f == "" {
			continue
		}
		out = append(out, f)
	}
	return out
}
