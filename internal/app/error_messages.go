// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// Scripture Lens HTTP handlers, MCP tools and the terminal UI.
//
// All Msg* constants are human-readable message strings that are written into
// response bodies, tool results or status lines to describe the outcome of an
// operation. Keeping them in one place ensures consistent wording.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails basic validation.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgNoteNotFound is returned when the requested note id is unknown.
	MsgNoteNotFound = "note not found"

	// MsgInsightNotFound is returned when the insight id is not part of the
	// latest batch.
	MsgInsightNotFound = "insight not found"

	// MsgNoActiveNote is returned when an operation needs a selected note.
	MsgNoActiveNote = "no note is selected"

	// MsgBlankContent is shown when analysis is requested for an empty note.
	MsgBlankContent = "note content is empty"

	// MsgAnalyzerNotConfigured is returned when no API key is configured.
	MsgAnalyzerNotConfigured = "analyzer is not configured: set ANALYZER_API_KEY"

	// MsgAnalysisFailed is the user-facing message for any failed analysis.
	MsgAnalysisFailed = "Failed to analyze notes. Please check your connection or API key."
)

// UI strings shared by every front end.
const (
	UntitledNote      = "Untitled Note"
	NoContent         = "No content"
	EmptyNotesMessage = "No notes yet. Create one to begin."
	InsightsFooter    = "AI results may vary. Always verify with primary sources."
	InsightsTitle     = "AI Insights"
	EmptyInsightsHint = `Press "a" to generate insights…`

	TitlePlaceholder   = "Title your study..."
	ContentPlaceholder = "Start writing your observations, scriptures, and thoughts..."
)
