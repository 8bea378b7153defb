// Package app provides the application context and dependency management
// for the quantenv CLI. It centralizes configuration, logging, and the
// API client so commands receive their dependencies rather than reaching
// for globals.
package app

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/quantcdn/quant-cloud-environment-var-action/internal/github"
	"github.com/quantcdn/quant-cloud-environment-var-action/internal/quantcloud"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/reconcile"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// App represents the quantenv application with all its dependencies.
type App struct {
	// Version information
	version string
	commit  string
	date    string

	// Configuration
	config *Config

	// Logger
	logger *zerolog.Logger

	// Reporter (lazy-initialized, singleton)
	mu       sync.Mutex
	reporter *github.Reporter
}

// New creates a new App instance with the given version information.
func New(version, commit, date string, opts ...Option) (*App, error) {
	app := &App{
		version: version,
		commit:  commit,
		date:    date,
	}

	config, err := LoadConfig()
	if err != nil {
		return nil, err
	}
	app.config = config

	logger := NewLogger(config)
	app.logger = &logger

	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, err
		}
	}

	return app, nil
}

// Version returns the version information.
func (a *App) Version() string {
	return a.version
}

// Commit returns the git commit hash.
func (a *App) Commit() string {
	return a.commit
}

// Date returns the build date.
func (a *App) Date() string {
	return a.date
}

// Config returns the application configuration.
func (a *App) Config() *Config {
	return a.config
}

// Logger returns the application logger.
func (a *App) Logger() *zerolog.Logger {
	return a.logger
}

// OutputFormat returns the configured stdout format for list.
func (a *App) OutputFormat() string {
	return a.config.Format
}

// Sources returns the set-operation payload sources.
func (a *App) Sources() vars.Sources {
	return a.config.Sources()
}

// KeysInput returns the raw delete key-list input.
func (a *App) KeysInput() string {
	return a.config.Keys
}

// ReplaceInput returns the replace flag input.
func (a *App) ReplaceInput() bool {
	return a.config.Replace
}

// Store validates the target inputs and builds the remote store scoped to
// the configured environment. Validation failures surface before any
// remote call is attempted.
func (a *App) Store() (reconcile.RemoteStore, error) {
	if err := a.config.ValidateTarget(); err != nil {
		return nil, err
	}

	client, err := quantcloud.NewClient(a.config.APIKey, a.config.BaseURL)
	if err != nil {
		return nil, err
	}

	return client.Environment(
		a.config.Organization,
		a.config.Application,
		a.config.Environment,
	), nil
}

// Reporter returns the GitHub outputs reporter, creating it lazily. The
// API key is registered for log masking on first use.
func (a *App) Reporter() *github.Reporter {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.reporter == nil {
		a.reporter = github.NewReporter(a.logger)
		a.reporter.MaskSecret(a.config.APIKey)
	}
	return a.reporter
}

// Option is a functional option for configuring the App.
type Option func(*App) error

// WithConfig sets a custom configuration.
func WithConfig(config *Config) Option {
	return func(a *App) error {
		a.config = config
		return nil
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(a *App) error {
		a.logger = logger
		return nil
	}
}
