package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID, h.withLogging)

	router.Route("/api", func(r chi.Router) {
		r.Use(withGZip)

		r.Get("/version", h.getServerVersion)

		r.Route("/notes", func(r chi.Router) {
			r.Get("/", h.listNotes)
			r.Post("/", h.createNote)
			r.Get("/{id}", h.getNote)
			r.Patch("/{id}", h.updateNote)
			r.Delete("/{id}", h.deleteNote)
			r.Get("/{id}/html", h.getNoteHTML)
		})

		r.Get("/active", h.getActiveNote)
		r.Put("/active", h.selectNote)
		r.Post("/active/analyze", h.analyzeActiveNote)

		r.Get("/insights", h.listInsights)
		r.Post("/insights/{id}/append", h.appendInsight)
	})

	if h.mcp != nil {
		router.Handle("/mcp", h.mcp)
	}

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
