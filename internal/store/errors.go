package store

import "errors"

// Sentinel errors returned by [NoteStore] methods. Callers should use
// [errors.Is] to match against these values.
var (
	// ErrNoteNotFound is returned when an operation targets a note id that
	// is not in the collection.
	ErrNoteNotFound = errors.New("note was not found")

	// ErrNoActiveNote is returned when an operation requires a selected
	// note and nothing is selected.
	ErrNoActiveNote = errors.New("no active note")

	// ErrInsightNotFound is returned when an insight id is not part of the
	// latest batch.
	ErrInsightNotFound = errors.New("insight was not found")
)
