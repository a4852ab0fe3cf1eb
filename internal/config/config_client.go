package config

import (
	"fmt"
)

// ClientConfig is the configuration view of the terminal client.
type ClientConfig struct {
	// App contains version and logging settings.
	App App
	// Analyzer contains the text-generation service settings.
	Analyzer Analyzer
}

// ServerConfig is the configuration view of the HTTP/MCP server.
type ServerConfig struct {
	App      App
	Analyzer Analyzer
	Server   Server
}

// GetClientConfig builds and validates the client config view from the
// merged structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.clientView()
}

// GetServerConfig builds and validates the server config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return cfg.serverView()
}

func (cfg *StructuredConfig) clientView() (*ClientConfig, error) {
	clientCfg := &ClientConfig{
		App:      cfg.App,
		Analyzer: cfg.Analyzer,
	}

	return clientCfg, clientCfg.validate()
}

func (cfg *StructuredConfig) serverView() (*ServerConfig, error) {
	serverCfg := &ServerConfig{
		App:      cfg.App,
		Analyzer: cfg.Analyzer,
		Server:   cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
