// Package envfile decodes the dotenv dialect accepted by the env_file input.
//
// The format is simple: one KEY=VALUE per line, # comments and blank lines
// ignored. Values may be wrapped in a single pair of matching single or
// double quotes, which are stripped without any escape interpretation.
// Lines without an = are ignored rather than rejected, and the last
// occurrence of a duplicate key wins.
package envfile

import (
	"bufio"
	"os"
	"sort"
	"strings"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

// Parse decodes dotenv text into a key/value map. Parsing never fails;
// malformed lines are skipped.
func Parse(data string) map[string]string {
	result := make(map[string]string)

	scanner := bufio.NewScanner(strings.NewReader(data))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// Skip blank lines and comments
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		// Split on first '='
		idx := strings.Index(line, "=")
		if idx < 0 {
			continue
		}

		key := strings.TrimSpace(line[:idx])
		if key == "" {
			continue
		}
		value := unquote(strings.TrimSpace(line[idx+1:]))

		result[key] = value
	}

	return result
}

// Load reads a dotenv file from disk and parses it. An unreadable file is
// fatal to the whole run, so the IOError is returned rather than folded
// into per-variable accounting.
func Load(path string) (map[string]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.WrapIO("read", path, err)
	}
	return Parse(string(data)), nil
}

// Marshal renders a map back to KEY=VALUE lines with keys sorted. Quoting
// is not reproduced, so Parse(Marshal(m)) == m but byte-level round-trips
// are not guaranteed.
func Marshal(vars map[string]string) string {
	keys := make([]string, 0, len(vars))
	for k := range vars {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(k)
		b.WriteString("=")
		b.WriteString(vars[k])
		b.WriteString("\n")
	}
	return b.String()
}

// unquote strips one matching pair of outer single or double quotes.
// No escape sequences are interpreted inside the quotes.
func unquote(value string) string {
	if len(value) >= 2 {
		first, last := value[0], value[len(value)-1]
		if first == last && (first == '"' || first == '\'') {
			return value[1 : len(value)-1]
		}
	}
	return value
}
