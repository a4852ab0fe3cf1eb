// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"strings"

	"github.com/rs/zerolog"
)

// validate checks the merged [StructuredConfig] for values that are invalid
// regardless of which binary consumes them.
//
// A missing analyzer API key is accepted here; the analyzer
// reports it as a configuration error when an analysis is requested.
func (cfg *StructuredConfig) validate() error {
	if cfg.App.LogLevel != "" {
		if _, err := zerolog.ParseLevel(strings.ToLower(cfg.App.LogLevel)); err != nil {
			return fmt.Errorf("%w: log level %q", ErrInvalidAppConfigs, cfg.App.LogLevel)
		}
	}

	return nil
}

func (a Analyzer) validate() error {
	switch a.Provider {
	case ProviderGemini:
	case ProviderOpenAI:
		if a.BaseURL == "" {
			return fmt.Errorf("%w: provider %q requires a base URL", ErrInvalidAnalyzerConfigs, a.Provider)
		}
	default:
		return fmt.Errorf("%w: unknown provider %q", ErrInvalidAnalyzerConfigs, a.Provider)
	}

	if a.Model == "" {
		return fmt.Errorf("%w: empty model", ErrInvalidAnalyzerConfigs)
	}

	if a.RequestTimeout < 0 {
		return fmt.Errorf("%w: negative request timeout", ErrInvalidAnalyzerConfigs)
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	return cfg.Analyzer.validate()
}

func (cfg *ServerConfig) validate() error {
	if err := cfg.Analyzer.validate(); err != nil {
		return err
	}

	if cfg.Server.HTTPAddress == "" || cfg.Server.RequestTimeout <= 0 {
		return ErrInvalidServerConfigs
	}

	return nil
}
