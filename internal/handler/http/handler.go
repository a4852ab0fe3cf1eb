package http

import (
	"net/http"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
)

type Handler struct {
	services  *service.Services
	validator validators.Validator

	// mcp serves the Model Context Protocol endpoint; nil disables /mcp.
	mcp http.Handler

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}
}

// WithMCP mounts the given handler at /mcp when the router is built.
func (h *Handler) WithMCP(mcpHandler http.Handler) *Handler {
	h.mcp = mcpHandler
	return h
}
