package app

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/logging"
)

func newListServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"environmentVariables":[{"name":"DB_PASSWORD","value":"hunter2-secret"}]}`))
	}))
	t.Cleanup(server.Close)
	return server
}

func newTestApp(t *testing.T, serverURL, operation string) *App {
	t.Helper()
	application, err := New("test", "none", "unknown",
		WithConfig(&Config{
			APIKey:       "test-key",
			Organization: "acme",
			Application:  "site",
			Environment:  "production",
			BaseURL:      serverURL,
			Operation:    operation,
			LogOutput:    "discard",
		}),
		WithLogger(logging.NewNopLogger()),
	)
	require.NoError(t, err)
	return application
}

func TestActionModeListKeepsValuesOffStdout(t *testing.T) {
	outputs := filepath.Join(t.TempDir(), "github_output")
	require.NoError(t, os.WriteFile(outputs, nil, 0o644))
	t.Setenv("GITHUB_OUTPUT", outputs)

	server := newListServer(t)
	application := newTestApp(t, server.URL, "list")

	var stdout bytes.Buffer
	rootCmd := application.createRootCommand()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	// Values reach the variables output only, never the workflow log.
	assert.NotContains(t, stdout.String(), "hunter2-secret")

	written, err := os.ReadFile(outputs)
	require.NoError(t, err)
	assert.Contains(t, string(written), "hunter2-secret")
}

func TestListSubcommandRendersToStdout(t *testing.T) {
	t.Setenv("GITHUB_OUTPUT", "")
	server := newListServer(t)
	application := newTestApp(t, server.URL, "")

	var stdout bytes.Buffer
	rootCmd := application.createRootCommand()
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stdout)
	rootCmd.SetArgs([]string{"list", "-o", "json"})
	require.NoError(t, rootCmd.ExecuteContext(context.Background()))

	assert.Contains(t, stdout.String(), "DB_PASSWORD")
	assert.Contains(t, stdout.String(), "hunter2-secret")
}
