package http

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/yuin/goldmark"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
	"github.com/MKhiriev/go-scripture-lens/models"
)

// noteRequest is the body of POST /api/notes and PATCH /api/notes/{id}.
// Absent fields are left unchanged.
type noteRequest struct {
	Title   *string `json:"title"`
	Content *string `json:"content"`
}

func (n noteRequest) fields() models.NoteFields {
	return models.NoteFields{Title: n.Title, Content: n.Content}
}

func decodeJSON(r *http.Request, dst any) error {
	if r.Body == nil || r.ContentLength == 0 {
		return nil
	}
	err := json.NewDecoder(r.Body).Decode(dst)
	if errors.Is(err, io.EOF) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%w: %w", errInvalidJSON, err)
	}
	return nil
}

// notesResponse is the body of GET /api/notes. ActiveID is null when
// nothing is selected.
type notesResponse struct {
	Notes    []models.Note `json:"notes"`
	ActiveID *string       `json:"activeId"`
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	resp := notesResponse{Notes: h.services.NoteService.List(ctx)}
	if active, ok := h.services.NoteService.Active(ctx); ok {
		resp.ActiveID = &active.ID
	}

	utils.WriteJSON(w, resp, http.StatusOK)
}

func (h *Handler) createNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	fields := req.fields()
	if err := h.validator.Validate(ctx, fields); err != nil {
		writeError(w, r, err)
		return
	}

	note := h.services.NoteService.Create(ctx)
	if !fields.IsEmpty() {
		updated, err := h.services.NoteService.Update(ctx, note.ID, fields)
		if err != nil {
			writeError(w, r, err)
			return
		}
		note = updated
	}

	w.Header().Set("Location", "/api/notes/"+note.ID)
	utils.WriteJSON(w, note, http.StatusCreated)
}

func (h *Handler) getNote(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) updateNote(w http.ResponseWriter, r *http.Request) {
	var req noteRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	fields := req.fields()
	if err := h.validator.Validate(r.Context(), fields,
		validators.FieldAny, validators.FieldTitle, validators.FieldContent); err != nil {
		writeError(w, r, err)
		return
	}

	note, err := h.services.NoteService.Update(r.Context(), chi.URLParam(r, "id"), fields)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	if err := h.services.NoteService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getNoteHTML renders the note content as Markdown.
func (h *Handler) getNoteHTML(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	note, err := h.services.NoteService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(note.Content), &buf); err != nil {
		log.Err(err).Str("note_id", note.ID).Msg("markdown rendering failed")
		writeError(w, r, err)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
