// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container of the
// application. It is populated by merging environment variables,
// command-line flags, an optional JSON file and built-in defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings: version and logging.
	App App `envPrefix:"APP_"`

	// Analyzer holds the settings of the external text-generation service
	// used to produce insights.
	Analyzer Analyzer `envPrefix:"ANALYZER_"`

	// Server holds listen address and timeouts of the HTTP/MCP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// Version is exposed via /api/version and the MCP server info.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// LogLevel is a zerolog level name ("debug", "info", "warn", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogFile is where the terminal client writes its log, since the
	// terminal itself is occupied by the UI.
	// Env: APP_LOG_FILE
	LogFile string `env:"LOG_FILE"`
}

// Analyzer configures the external text-generation service.
type Analyzer struct {
	// Provider selects the adapter: "gemini" or "openai".
	// Env: ANALYZER_PROVIDER
	Provider string `env:"PROVIDER"`

	// APIKey is the credential injected into the adapter. An empty key is
	// allowed at startup and reported as a configuration error on the
	// first analysis.
	// Env: ANALYZER_API_KEY
	APIKey string `env:"API_KEY"`

	// Model is the model identifier sent with every request.
	// Env: ANALYZER_MODEL
	Model string `env:"MODEL"`

	// BaseURL overrides the service endpoint (required for "openai").
	// Env: ANALYZER_BASE_URL
	BaseURL string `env:"BASE_URL"`

	// RequestTimeout bounds a single analysis request. Zero leaves the
	// timeout to the transport.
	// Env: ANALYZER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is used as the read/write timeout of the HTTP server.
	// Analysis requests can be slow, so keep it above the analyzer timeout.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// MCPEnabled mounts the Model Context Protocol endpoint at /mcp.
	// Env: SERVER_MCP_ENABLED
	MCPEnabled bool `env:"MCP_ENABLED"`
}

// GetStructuredConfig loads and merges the configuration from all sources.
// For every field the first source holding a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags(os.Args[1:]).
		withJSON().
		withDefaults().
		build()
}
