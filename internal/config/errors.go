package config

import "errors"

// Validation errors returned when required configuration groups are
// incomplete or invalid.
var (
	// ErrInvalidAnalyzerConfigs indicates invalid analyzer settings
	// (for example, an unknown provider or an empty model).
	ErrInvalidAnalyzerConfigs = errors.New("invalid analyzer configuration")
	// ErrInvalidServerConfigs indicates invalid server settings
	// (for example, missing listen address or request timeout).
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
	// ErrInvalidAppConfigs indicates invalid application-level settings
	// (for example, an unknown log level).
	ErrInvalidAppConfigs = errors.New("invalid app configuration")
)
