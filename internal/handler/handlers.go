package handler

import (
	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/handler/http"
	"github.com/MKhiriev/go-scripture-lens/internal/handler/mcp"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
	MCP  *mcp.Handler
}

func NewHandlers(services *service.Services, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if services == nil {
		return nil, errNoServicesProvided
	}
	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{
		HTTP: http.NewHandler(services, logger),
	}

	if cfg.MCPEnabled {
		handlers.MCP = mcp.NewHandler(services, logger)
		handlers.HTTP.WithMCP(handlers.MCP.Init())
	}

	return handlers, nil
}
