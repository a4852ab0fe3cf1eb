package config

import "time"

// Provider names accepted by Analyzer.Provider.
const (
	ProviderGemini = "gemini"
	ProviderOpenAI = "openai"
)

const (
	defaultModel          = "gemini-2.5-flash"
	defaultHTTPAddress    = "localhost:8080"
	defaultRequestTimeout = 2 * time.Minute
	defaultLogLevel       = "info"
	defaultClientLogFile  = "scripture-lens.log"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Version:  "dev",
			LogLevel: defaultLogLevel,
			LogFile:  defaultClientLogFile,
		},
		Analyzer: Analyzer{
			Provider: ProviderGemini,
			Model:    defaultModel,
		},
		Server: Server{
			HTTPAddress:    defaultHTTPAddress,
			RequestTimeout: defaultRequestTimeout,
		},
	}
}
