package cmd

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quantcdn/quant-cloud-environment-var-action/internal/github"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/logging"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// fakeStore implements reconcile.RemoteStore with per-key error injection.
type fakeStore struct {
	remote     vars.Map
	updateErrs map[string]error
	deleteErrs map[string]error
	listErr    error
	replaceErr error

	replaced *vars.Map
	updated  []string
	deleted  []string
}

func (f *fakeStore) List(context.Context) (vars.Map, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.remote, nil
}

func (f *fakeStore) Replace(_ context.Context, desired vars.Map) error {
	if f.replaceErr != nil {
		return f.replaceErr
	}
	f.replaced = &desired
	return nil
}

func (f *fakeStore) Update(_ context.Context, key, _ string) error {
	if err := f.updateErrs[key]; err != nil {
		return err
	}
	f.updated = append(f.updated, key)
	return nil
}

func (f *fakeStore) Delete(_ context.Context, key string) error {
	if err := f.deleteErrs[key]; err != nil {
		return err
	}
	f.deleted = append(f.deleted, key)
	return nil
}

// fakeApp implements AppContext over a fakeStore.
type fakeApp struct {
	store    *fakeStore
	storeErr error
	logger   *zerolog.Logger
	reporter *github.Reporter

	sources vars.Sources
	keys    string
	replace bool
}

func newFakeApp(t *testing.T, store *fakeStore) *fakeApp {
	t.Helper()
	logger := logging.NewNopLogger()
	return &fakeApp{
		store:    store,
		logger:   logger,
		reporter: github.NewReporter(logger),
	}
}

func (a *fakeApp) Logger() *zerolog.Logger { return a.logger }

func (a *fakeApp) Store() (reconcile.RemoteStore, error) {
	if a.storeErr != nil {
		return nil, a.storeErr
	}
	return a.store, nil
}

func (a *fakeApp) Reporter() *github.Reporter { return a.reporter }
func (a *fakeApp) OutputFormat() string       { return "json" }
func (a *fakeApp) Sources() vars.Sources      { return a.sources }
func (a *fakeApp) KeysInput() string          { return a.keys }
func (a *fakeApp) ReplaceInput() bool         { return a.replace }
func (a *fakeApp) Version() string            { return "test" }
func (a *fakeApp) Commit() string             { return "none" }
func (a *fakeApp) Date() string               { return "unknown" }

// outputFile points GITHUB_OUTPUT at a temp file and returns a reader for
// whatever the run wrote there.
func outputFile(t *testing.T) func() string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "outputs")
	require.NoError(t, os.WriteFile(path, nil, 0o644))
	t.Setenv("GITHUB_OUTPUT", path)
	return func() string {
		data, err := os.ReadFile(path)
		require.NoError(t, err)
		return string(data)
	}
}

func TestRunList(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{remote: vars.Map{"API_URL": "https://api.example.com", "DEBUG": "false"}}
	app := newFakeApp(t, store)

	var stdout bytes.Buffer
	require.NoError(t, RunList(context.Background(), app, &stdout, "json"))

	assert.Contains(t, stdout.String(), `"API_URL"`)
	assert.Contains(t, stdout.String(), `"DEBUG"`)

	outputs := readOutputs()
	assert.Contains(t, outputs, "variables")
	assert.Contains(t, outputs, "count")
}

func TestRunListStoreError(t *testing.T) {
	app := newFakeApp(t, &fakeStore{})
	app.storeErr = errors.ErrAPIKeyRequired

	var stdout bytes.Buffer
	err := RunList(context.Background(), app, &stdout, "json")
	require.ErrorIs(t, err, errors.ErrAPIKeyRequired)
	assert.Empty(t, stdout.String())
}

func TestRunSetEmptySources(t *testing.T) {
	store := &fakeStore{}
	app := newFakeApp(t, store)

	err := RunSet(context.Background(), app, vars.Sources{}, false)
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, store.updated, "no remote call before input validation")
	assert.Nil(t, store.replaced)
}

func TestRunSetMerge(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{}
	app := newFakeApp(t, store)

	sources := vars.Sources{Inline: "A=1,B=2"}
	require.NoError(t, RunSet(context.Background(), app, sources, false))

	assert.Equal(t, []string{"A", "B"}, store.updated)
	assert.Nil(t, store.replaced)
	assert.Contains(t, readOutputs(), "updated_count")
}

func TestRunSetReplace(t *testing.T) {
	store := &fakeStore{}
	app := newFakeApp(t, store)

	sources := vars.Sources{Inline: "A=1,B=2"}
	require.NoError(t, RunSet(context.Background(), app, sources, true))

	require.NotNil(t, store.replaced)
	assert.Equal(t, vars.Map{"A": "1", "B": "2"}, *store.replaced)
	assert.Empty(t, store.updated)
}

func TestRunSetPartialFailureStillReports(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{
		updateErrs: map[string]error{"B": errors.NewAPIError("/variables/B", 500, "boom")},
	}
	app := newFakeApp(t, store)

	err := RunSet(context.Background(), app, vars.Sources{Inline: "A=1,B=2,C=3"}, false)
	require.Error(t, err)

	// Counters still reach the output file when the run fails.
	outputs := readOutputs()
	assert.Contains(t, outputs, "updated_count")
	assert.Contains(t, outputs, "failed_count")
	assert.Equal(t, []string{"A", "C"}, store.updated)
}

func TestRunClear(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{}
	app := newFakeApp(t, store)

	require.NoError(t, RunClear(context.Background(), app))

	require.NotNil(t, store.replaced)
	assert.Empty(t, *store.replaced)
	assert.Contains(t, readOutputs(), reconcile.AllCleared)
}

func TestRunClearFatal(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{replaceErr: errors.NewAPIError("/variables", 502, "bad gateway")}
	app := newFakeApp(t, store)

	require.Error(t, RunClear(context.Background(), app))
	assert.Empty(t, readOutputs(), "no outputs on a failed clear")
}

func TestRunDelete(t *testing.T) {
	readOutputs := outputFile(t)
	store := &fakeStore{
		deleteErrs: map[string]error{
			"GONE":   errors.NewAPIError("/variables/GONE", 404, "not found"),
			"BROKEN": errors.NewAPIError("/variables/BROKEN", 500, "boom"),
		},
	}
	app := newFakeApp(t, store)

	// Missing keys count as deleted; other failures never fail the run.
	require.NoError(t, RunDelete(context.Background(), app, "OLD,GONE,BROKEN"))

	assert.Equal(t, []string{"OLD"}, store.deleted)
	outputs := readOutputs()
	assert.Contains(t, outputs, "deleted_count")
	assert.Contains(t, outputs, "failed_count")
}

func TestRunDeleteEmptyKeys(t *testing.T) {
	store := &fakeStore{}
	app := newFakeApp(t, store)

	err := RunDelete(context.Background(), app, "  ,\n, ")
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
	assert.Empty(t, store.deleted)
}
