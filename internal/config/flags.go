package config

import (
	"errors"
	"flag"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"
)

// NetAddress holds structured network address data for host and port.
// It implements the flag.Value interface.
type NetAddress struct {
	Host string
	Port int
}

// parseFlags parses the command-line arguments (without the program name).
//
// Flags:
//
//	-a server address in format [host]:[port]
//	-c/-config json file path with configs
//	-provider analyzer provider (gemini, openai)
//	-api-key analyzer credential
//	-model analyzer model name
//	-base-url analyzer endpoint override
//	-analyzer-timeout single analysis timeout (e.g., "30s")
//	-request-timeout server read/write timeout (e.g., "2m")
//	-mcp mount the MCP endpoint
//	-log-level log level
//	-log-file client log file path
func parseFlags(args []string) (*StructuredConfig, error) {
	var serverAddress NetAddress
	var jsonConfigPath string
	var provider, apiKey, model, baseURL string
	var analyzerTimeout, requestTimeout time.Duration
	var mcpEnabled bool
	var logLevel, logFile string

	fs := flag.NewFlagSet("scripture-lens", flag.ContinueOnError)
	fs.Var(&serverAddress, "a", "Net address host:port")
	fs.StringVar(&jsonConfigPath, "c", "", "JSON config file path")
	fs.StringVar(&jsonConfigPath, "config", "", "JSON config file path (alias)")
	fs.StringVar(&provider, "provider", "", "Analyzer provider (gemini, openai)")
	fs.StringVar(&apiKey, "api-key", "", "Analyzer API key")
	fs.StringVar(&model, "model", "", "Analyzer model")
	fs.StringVar(&baseURL, "base-url", "", "Analyzer endpoint override")
	fs.DurationVar(&analyzerTimeout, "analyzer-timeout", 0, "Analysis request timeout (e.g., 30s, 1m)")
	fs.DurationVar(&requestTimeout, "request-timeout", 0, "Server request timeout (e.g., 30s, 1m)")
	fs.BoolVar(&mcpEnabled, "mcp", false, "Mount the MCP endpoint at /mcp")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Client log file path")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("error parsing flags: %w", err)
	}

	return &StructuredConfig{
		App: App{
			LogLevel: logLevel,
			LogFile:  logFile,
		},
		Analyzer: Analyzer{
			Provider:       provider,
			APIKey:         apiKey,
			Model:          model,
			BaseURL:        baseURL,
			RequestTimeout: analyzerTimeout,
		},
		Server: Server{
			HTTPAddress:    serverAddress.String(),
			RequestTimeout: requestTimeout,
			MCPEnabled:     mcpEnabled,
		},
		JSONFilePath: jsonConfigPath,
	}, nil
}

// String returns a canonical host:port string for a NetAddress.
// An unset address renders as an empty string.
func (a *NetAddress) String() string {
	if a.Host == "" && a.Port == 0 {
		return ""
	}

	return a.Host + ":" + strconv.Itoa(a.Port)
}

// Set parses the input string of form host:port and populates the NetAddress.
// It validates the port range, checks IP correctness unless host is "localhost",
// and returns an error if the format or values are invalid.
func (a *NetAddress) Set(s string) error {
	hostAndPort := strings.Split(s, ":")
	if len(hostAndPort) != 2 {
		return errors.New("need address in a form `host:port`")
	}

	host := hostAndPort[0]
	port, err := strconv.Atoi(hostAndPort[1])
	if err != nil {
		return err
	}

	if port < 1 || port > 65535 {
		return errors.New("port number must be in range 1-65535")
	}

	if host != "localhost" && host != "" {
		if ip := net.ParseIP(host); ip == nil {
			return errors.New("incorrect IP-address provided")
		}
	}

	a.Host = host
	a.Port = port
	return nil
}
