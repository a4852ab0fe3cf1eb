// Package server wires and runs the application's HTTP server.
//
// It provides startup, signal handling and graceful shutdown. The HTTP
// server carries both the JSON API and, when enabled, the MCP endpoint.
package server
