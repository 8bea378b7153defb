package vars

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
)

func TestParseKeys(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{
			name: "comma delimited",
			raw:  "FOO,BAR,BAZ",
			want: []string{"FOO", "BAR", "BAZ"},
		},
		{
			name: "newline delimited",
			raw:  "FOO\nBAR\n",
			want: []string{"FOO", "BAR"},
		},
		{
			name: "duplicates and order preserved",
			raw:  "B,A,B",
			want: []string{"B", "A", "B"},
		},
		{
			name: "whitespace and blanks dropped",
			raw:  " FOO , , BAR \n",
			want: []string{"FOO", "BAR"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseKeys(tt.raw)
			if err != nil {
				t.Fatalf("ParseKeys(%q) failed: %v", tt.raw, err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("ParseKeys(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}

func TestParseKeys_EmptyIsUsageError(t *testing.T) {
	for _, raw := range []string{"", "  ", ",,\n,"} {
		_, err := ParseKeys(raw)
		if err == nil {
			t.Errorf("ParseKeys(%q) should fail", raw)
			continue
		}
		if !errors.IsValidationError(err) {
			t.Errorf("ParseKeys(%q) error should be a validation error, got %v", raw, err)
		}
	}
}
