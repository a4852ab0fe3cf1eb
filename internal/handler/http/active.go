package http

import (
	"net/http"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
)

// selectRequest is the body of PUT /api/active. An empty id deselects.
type selectRequest struct {
	ID string `json:"id"`
}

func (h *Handler) getActiveNote(w http.ResponseWriter, r *http.Request) {
	note, ok := h.services.NoteService.Active(r.Context())
	if !ok {
		writeError(w, r, store.ErrNoActiveNote)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) selectNote(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req selectRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, err)
		return
	}

	if err := h.services.NoteService.Select(ctx, req.ID); err != nil {
		writeError(w, r, err)
		return
	}

	note, ok := h.services.NoteService.Active(ctx)
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}

func (h *Handler) analyzeActiveNote(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	result, err := h.services.InsightService.AnalyzeActive(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().
		Str("note_id", result.NoteID).
		Int("insights", len(result.Insights)).
		Bool("applied", result.Applied).
		Msg("analysis finished")

	utils.WriteJSON(w, result, http.StatusOK)
}
