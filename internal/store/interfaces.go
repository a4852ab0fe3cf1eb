// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/note_store_mock.go -package=mock

import (
	"github.com/MKhiriev/go-scripture-lens/models"
)

// NoteStore owns the notes collection, the active-note selection and the
// latest insight batch. All state lives in memory for the process lifetime.
//
// Every method is atomic with respect to every other method, so a single
// NoteStore may be shared by the terminal UI, the HTTP handlers and the MCP
// tools.
type NoteStore interface {
	// List returns a copy of all notes, newest first.
	List() []models.Note

	// Get returns the note with the given id or [ErrNoteNotFound].
	Get(id string) (models.Note, error)

	// Active returns the selected note. The boolean is false when nothing
	// is selected.
	Active() (models.Note, bool)

	// Create inserts an empty note titled "Untitled Study" at the front of
	// the collection, selects it and clears the insight batch.
	Create() models.Note

	// Update applies the provided fields to the note and refreshes its
	// UpdatedAt. Returns [ErrNoteNotFound] for an unknown id.
	Update(id string, fields models.NoteFields) (models.Note, error)

	// Delete removes the note. Deleting the active note clears the
	// selection and the insight batch. Returns [ErrNoteNotFound] for an
	// unknown id.
	Delete(id string) error

	// Select makes the note active. An empty id clears the selection and
	// the insight batch. An unknown id is rejected with [ErrNoteNotFound]
	// and the current selection is kept.
	Select(id string) error

	// AppendInsight appends the formatted insight block to the active note.
	// Returns [ErrNoActiveNote] when nothing is selected.
	AppendInsight(insight models.Insight) (models.Note, error)

	// Insights returns a copy of the latest insight batch.
	Insights() []models.Insight

	// FindInsight looks an insight up in the latest batch by id.
	FindInsight(id string) (models.Insight, error)

	// BeginAnalysis registers a new analysis of the note and returns the
	// ticket that must be presented to ApplyInsights.
	BeginAnalysis(noteID string) AnalysisTicket

	// ApplyInsights replaces the insight batch if the ticket is the latest
	// one issued and its note is still active. It reports whether the batch
	// was replaced; stale results leave the state untouched.
	ApplyInsights(ticket AnalysisTicket, insights []models.Insight) bool

	// EnsureSeed inserts and selects the sample note the first time it is
	// called on an empty collection. Later calls never seed again.
	EnsureSeed() (models.Note, bool)
}

// AnalysisTicket identifies one analysis request.
type AnalysisTicket struct {
	// Seq grows monotonically within a store.
	Seq uint64
	// NoteID is the note that was active when the analysis began.
	NoteID string
}
