// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-scripture-lens/models"
)

// NoteService is the application-facing contract for managing study notes.
// It is shared by the terminal UI, the HTTP API and the MCP tools.
type NoteService interface {
	// EnsureSample seeds the sample note on first start with an empty
	// collection. The boolean reports whether a note was inserted.
	EnsureSample(ctx context.Context) (models.Note, bool)

	// List returns all notes, newest first.
	List(ctx context.Context) []models.Note

	// Get returns a single note or store.ErrNoteNotFound.
	Get(ctx context.Context, id string) (models.Note, error)

	// Active returns the selected note, if any.
	Active(ctx context.Context) (models.Note, bool)

	// Create inserts and selects a new empty note.
	Create(ctx context.Context) models.Note

	// Update changes the title and/or content of a note.
	Update(ctx context.Context, id string, fields models.NoteFields) (models.Note, error)

	// Delete removes a note.
	Delete(ctx context.Context, id string) error

	// Select changes the active note; an empty id deselects.
	Select(ctx context.Context, id string) error

	// Insights returns the latest insight batch.
	Insights(ctx context.Context) []models.Insight

	// AppendInsight appends the insight's text block to the active note.
	AppendInsight(ctx context.Context, insight models.Insight) (models.Note, error)

	// AppendInsightByID appends an insight from the latest batch to the
	// active note.
	AppendInsightByID(ctx context.Context, insightID string) (models.Note, error)
}

// InsightService analyzes notes with the external text-generation service.
type InsightService interface {
	// Analyze sends the note's title and content to the service and returns
	// the parsed insights, each with a freshly generated id. It does not
	// change any application state.
	//
	// Errors: [ErrBlankContent] when the content is blank (no request is
	// made), [ErrConfiguration] when no credential is configured (no request
	// is made), [ErrAnalysisFailed] for transport, status or reply-format
	// failures.
	Analyze(ctx context.Context, note models.Note) ([]models.Insight, error)

	// AnalyzeActive analyzes the active note and stores the result as the
	// latest insight batch, unless a newer analysis was started or the
	// selection changed meanwhile. A failed analysis leaves the previous
	// batch and the note untouched.
	AnalyzeActive(ctx context.Context) (AnalysisResult, error)
}

// AppInfoService exposes static information about the running application.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo(ctx context.Context) models.AppBuildInfo
}

// AnalysisResult is the outcome of [InsightService.AnalyzeActive].
type AnalysisResult struct {
	NoteID   string           `json:"noteId"`
	Insights []models.Insight `json:"insights"`
	// Applied is false when the result was discarded as stale.
	Applied bool `json:"applied"`
}
