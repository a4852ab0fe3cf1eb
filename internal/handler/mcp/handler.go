// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mcp exposes the note workspace as Model Context Protocol tools.
//
// The tools operate on the same services as the HTTP API, so an assistant
// connected over MCP sees and changes the same notes, selection and insight
// batch. Failures are reported as tool-result errors, never as transport
// errors.
package mcp

import (
	"context"
	"net/http"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
)

const serverName = "Scripture Lens"

type Handler struct {
	services  *service.Services
	server    *server.MCPServer
	validator validators.Validator

	logger *logger.Logger
}

func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	h := &Handler{
		services:  services,
		validator: validators.NewNoteValidator(),
		logger:    logger,
	}

	version := "dev"
	if services.AppInfoService != nil {
		version = services.AppInfoService.GetAppVersion(context.Background())
	}

	h.server = server.NewMCPServer(
		serverName,
		version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)
	h.registerTools()

	logger.Info().Str("version", version).Msg("mcp handler created")
	return h
}

// Init returns the streamable HTTP transport for the tools.
func (h *Handler) Init() http.Handler {
	return server.NewStreamableHTTPServer(h.server)
}

func (h *Handler) registerTools() {
	h.server.AddTool(
		mcp.NewTool("list_notes",
			mcp.WithDescription("List all study notes, newest first, with the id of the active note."),
		),
		h.listNotes,
	)

	h.server.AddTool(
		mcp.NewTool("get_note",
			mcp.WithDescription("Get a study note with its full content."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note id"),
			),
		),
		h.getNote,
	)

	h.server.AddTool(
		mcp.NewTool("create_note",
			mcp.WithDescription("Create a new study note and make it the active note."),
			mcp.WithString("title",
				mcp.Description("Optional title (default: 'Untitled Study')"),
			),
			mcp.WithString("content",
				mcp.Description("Optional initial content"),
			),
		),
		h.createNote,
	)

	h.server.AddTool(
		mcp.NewTool("analyze_note",
			mcp.WithDescription("Select a note and generate 3-5 scholarly insights for it "+
				"(historical, theological, linguistic or application). "+
				"The insights replace the current insight batch."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The note id"),
			),
		),
		h.analyzeNote,
	)

	h.server.AddTool(
		mcp.NewTool("append_insight",
			mcp.WithDescription("Append an insight from the latest batch to the active note."),
			mcp.WithString("id",
				mcp.Required(),
				mcp.Description("The insight id returned by analyze_note"),
			),
		),
		h.appendInsight,
	)
}
