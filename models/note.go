// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Note is a single study note kept in memory for the lifetime of the process.
//
// ID and CreatedAt are assigned once on creation and never change.
// UpdatedAt is refreshed on every mutation and is never earlier than
// CreatedAt.
type Note struct {
	// ID is the unique note identifier generated locally.
	ID string `json:"id"`

	// Title is the user-supplied heading; it may be empty.
	Title string `json:"title"`

	// Content is the free-form note body; it may be empty.
	Content string `json:"content"`

	// CreatedAt is the moment the note was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the moment of the latest mutation.
	UpdatedAt time.Time `json:"updatedAt"`
}

// NoteFields is a partial update of a [Note].
//
// Only the user-editable fields are representable, so callers cannot
// overwrite the identifier or the timestamps. A nil field is left unchanged.
type NoteFields struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// IsEmpty reports whether the update carries no fields.
func (f NoteFields) IsEmpty() bool {
	return f.Title == nil && f.Content == nil
}
