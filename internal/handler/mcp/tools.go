package mcp

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
	"github.com/MKhiriev/go-scripture-lens/models"
)

type notesResult struct {
	Notes    []models.Note `json:"notes"`
	ActiveID *string       `json:"activeId"`
}

func jsonResult(v any) (*mcp.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(app.MsgInternalServerError), nil
	}
	return mcp.NewToolResultText(string(data)), nil
}

// errorResult converts a service error into a tool-result error with the
// same wording as the HTTP API.
func (h *Handler) errorResult(tool string, err error) *mcp.CallToolResult {
	h.logger.Err(err).Str("tool", tool).Msg("tool call failed")

	msg := app.MsgInternalServerError
	switch {
	case errors.Is(err, store.ErrNoteNotFound):
		msg = app.MsgNoteNotFound
	case errors.Is(err, store.ErrInsightNotFound):
		msg = app.MsgInsightNotFound
	case errors.Is(err, store.ErrNoActiveNote):
		msg = app.MsgNoActiveNote
	case errors.Is(err, service.ErrBlankContent):
		msg = app.MsgBlankContent
	case errors.Is(err, service.ErrConfiguration):
		msg = app.MsgAnalyzerNotConfigured
	case errors.Is(err, service.ErrAnalysisFailed):
		msg = app.MsgAnalysisFailed
	case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, validators.ErrValidation):
		msg = app.MsgInvalidDataProvided
	}

	return mcp.NewToolResultError(fmt.Sprintf("%s: %s", tool, msg))
}

func (h *Handler) listNotes(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	res := notesResult{Notes: h.services.NoteService.List(ctx)}
	if active, ok := h.services.NoteService.Active(ctx); ok {
		res.ActiveID = &active.ID
	}

	return jsonResult(res)
}

func (h *Handler) getNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	note, err := h.services.NoteService.Get(ctx, id)
	if err != nil {
		return h.errorResult("get_note", err), nil
	}

	return jsonResult(note)
}

func (h *Handler) createNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	args := req.GetArguments()

	var fields models.NoteFields
	if title, ok := args["title"].(string); ok {
		fields.Title = &title
	}
	if content, ok := args["content"].(string); ok {
		fields.Content = &content
	}

	if err := h.validator.Validate(ctx, fields); err != nil {
		return h.errorResult("create_note", err), nil
	}

	note := h.services.NoteService.Create(ctx)
	if !fields.IsEmpty() {
		updated, err := h.services.NoteService.Update(ctx, note.ID, fields)
		if err != nil {
			return h.errorResult("create_note", err), nil
		}
		note = updated
	}

	return jsonResult(note)
}

func (h *Handler) analyzeNote(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	if err := h.services.NoteService.Select(ctx, id); err != nil {
		return h.errorResult("analyze_note", err), nil
	}

	result, err := h.services.InsightService.AnalyzeActive(ctx)
	if err != nil {
		return h.errorResult("analyze_note", err), nil
	}

	return jsonResult(result)
}

func (h *Handler) appendInsight(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	id, err := req.RequireString("id")
	if err != nil {
		return mcp.NewToolResultError("id is required"), nil
	}

	note, err := h.services.NoteService.AppendInsightByID(ctx, id)
	if err != nil {
		return h.errorResult("append_insight", err), nil
	}

	return jsonResult(note)
}
