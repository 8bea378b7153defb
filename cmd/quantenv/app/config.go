package app

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/errors"
	"github.com/quantcdn/quant-cloud-environment-var-action/pkg/vars"
)

// Config holds the one-shot run inputs, loaded once at process start and
// passed explicitly to each component. It is not mutated after flag
// parsing completes.
type Config struct {
	// Global flags
	Verbose  bool
	Quiet    bool
	NoColor  bool
	Format   string
	LogLevel string

	// API target
	APIKey       string
	Organization string
	Application  string
	Environment  string
	BaseURL      string

	// Operation selection (action mode)
	Operation string
	Replace   bool

	// Operation payloads
	EnvFile   string
	JSONVars  string
	Variables string
	Keys      string

	// Logging configuration
	LogFormat string
	LogOutput string
}

// inputs lists every action input with the environment variables it can be
// read from, in order of precedence. INPUT_* is how GitHub Actions passes
// inputs; QUANT_* supports local and other-CI runs.
var inputs = map[string][]string{
	"api_key":      {"INPUT_API_KEY", "QUANT_API_KEY"},
	"organization": {"INPUT_ORGANIZATION", "QUANT_ORGANIZATION"},
	"application":  {"INPUT_APPLICATION", "QUANT_APPLICATION"},
	"environment":  {"INPUT_ENVIRONMENT", "QUANT_ENVIRONMENT"},
	"base_url":     {"INPUT_BASE_URL", "QUANT_BASE_URL"},
	"operation":    {"INPUT_OPERATION", "QUANT_OPERATION"},
	"replace":      {"INPUT_REPLACE", "QUANT_REPLACE"},
	"env_file":     {"INPUT_ENV_FILE", "QUANT_ENV_FILE"},
	"json_vars":    {"INPUT_JSON_VARS", "QUANT_JSON_VARS"},
	"variables":    {"INPUT_VARIABLES", "QUANT_VARIABLES"},
	"keys":         {"INPUT_KEYS", "QUANT_KEYS"},
}

// LoadConfig loads configuration from all sources in order of precedence:
// 1. Command-line flags (handled by cobra after this returns)
// 2. INPUT_* environment variables (GitHub Actions)
// 3. QUANT_* environment variables
// 4. .env files
// 5. Defaults
func LoadConfig() (*Config, error) {
	// Load .env files first (before Viper env binding)
	loadEnvFiles()

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))

	for key, envs := range inputs {
		if err := viper.BindEnv(append([]string{key}, envs...)...); err != nil {
			return nil, errors.NewConfigError("inputs", "binding "+key, err)
		}
	}

	config := &Config{
		Verbose: viper.GetBool("verbose"),
		Quiet:   viper.GetBool("quiet"),
		NoColor: viper.GetBool("no-color"),

		APIKey:       viper.GetString("api_key"),
		Organization: viper.GetString("organization"),
		Application:  viper.GetString("application"),
		Environment:  viper.GetString("environment"),
		BaseURL:      viper.GetString("base_url"),

		Operation: viper.GetString("operation"),
		Replace:   viper.GetBool("replace"),

		EnvFile:   viper.GetString("env_file"),
		JSONVars:  viper.GetString("json_vars"),
		Variables: viper.GetString("variables"),
		Keys:      viper.GetString("keys"),

		LogFormat: getEnvOrDefault("LOG_FORMAT", "auto"),
		LogOutput: getEnvOrDefault("LOG_OUTPUT", "stderr"),
		LogLevel:  viper.GetString("LOG_LEVEL"),
	}

	return config, nil
}

// ValidateTarget checks the inputs every remote operation requires.
func (c *Config) ValidateTarget() error {
	if c.APIKey == "" {
		return errors.ErrAPIKeyRequired
	}
	if c.Organization == "" {
		return errors.NewValidationError("organization", "", "organization is required")
	}
	if c.Application == "" {
		return errors.NewValidationError("application", "", "application is required")
	}
	if c.Environment == "" {
		return errors.NewValidationError("environment", "", "environment is required")
	}
	return nil
}

// Sources returns the set-operation payload sources from the inputs.
func (c *Config) Sources() vars.Sources {
	return vars.Sources{
		EnvFile: c.EnvFile,
		JSON:    c.JSONVars,
		Inline:  c.Variables,
	}
}

// UpdateFromFlags updates config values from parsed command flags so that
// flag values take precedence over environment inputs.
func (c *Config) UpdateFromFlags(verbose, quiet, noColor bool, format, logLevel string) {
	c.Verbose = verbose
	c.Quiet = quiet
	c.NoColor = noColor
	if format != "" {
		c.Format = format
	}
	if logLevel != "" {
		c.LogLevel = logLevel
	}
}

// loadEnvFiles loads environment variables from .env files.
// .env.local overrides .env for values not already set in the process env.
func loadEnvFiles() {
	envFiles := []string{
		".env",
		".env.local",
	}

	for _, envFile := range envFiles {
		_ = godotenv.Load(envFile)
	}
}

// getEnvOrDefault returns the environment variable value or the default if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := viper.GetString(key); value != "" {
		return value
	}
	return defaultValue
}
