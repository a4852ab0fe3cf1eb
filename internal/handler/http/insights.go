package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-scripture-lens/internal/utils"
)

func (h *Handler) listInsights(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.NoteService.Insights(r.Context()), http.StatusOK)
}

func (h *Handler) appendInsight(w http.ResponseWriter, r *http.Request) {
	note, err := h.services.NoteService.AppendInsightByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, note, http.StatusOK)
}
