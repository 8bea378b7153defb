// Package constants provides shared constants used throughout the action.
// This includes timeouts, file permissions, and API defaults that should
// be consistent across the application.
package constants

import "time"

// Timeout constants define various timeout durations used in the application
const (
	// DefaultHTTPTimeout is the standard timeout for HTTP requests to the Quant Cloud API
	DefaultHTTPTimeout = 30 * time.Second

	// CommandTimeout is the default timeout for a whole CLI run
	CommandTimeout = 10 * time.Minute
)

// File permission constants define standard Unix file permissions
const (
	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// API defaults
const (
	// DefaultBaseURL is the Quant Cloud API endpoint used when no base_url
	// input is provided.
	DefaultBaseURL = "https://dashboard.quantcdn.io/api/v3"
)
