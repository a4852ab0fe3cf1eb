// Package http implements the HTTP transport layer of the application.
//
// It exposes the JSON API over the shared note state: note CRUD, the active
// selection, analysis and the insight batch. Request tracing, access logging
// and response compression are handled here before requests are delegated to
// the service layer. The MCP endpoint is mounted at /mcp when enabled.
package http
