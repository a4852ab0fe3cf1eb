// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// buildRouter creates a flat chi.Mux for tests without Handler.Init().
func buildRouter() *chi.Mux {
	router := chi.NewRouter()

	router.Get("/api/insights", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("[]"))
	})
	router.Get("/api/active", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	router.Put("/api/active", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

func TestCheckHTTPMethod_TableTest(t *testing.T) {
	router := buildRouter()

	tests := []struct {
		name           string
		method         string
		path           string
		expectedStatus int
	}{
		{"GET /api/insights passes through", http.MethodGet, "/api/insights", http.StatusOK},
		{"GET /api/active passes through", http.MethodGet, "/api/active", http.StatusOK},
		{"PUT /api/active passes through", http.MethodPut, "/api/active", http.StatusNoContent},
		{"POST /api/insights → 404", http.MethodPost, "/api/insights", http.StatusNotFound},
		{"DELETE /api/active → 404", http.MethodDelete, "/api/active", http.StatusNotFound},
		{"PATCH /api/active → 404", http.MethodPatch, "/api/active", http.StatusNotFound},
		{"unknown route → 404", http.MethodGet, "/api/unknown", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))
			assert.Equal(t, tt.expectedStatus, rr.Code)
		})
	}
}

func TestCheckHTTPMethod_PassThroughBody(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/insights", nil))

	assert.Equal(t, "[]", rr.Body.String())
}

func TestCheckHTTPMethod_WrongMethodIsNot405(t *testing.T) {
	rr := httptest.NewRecorder()
	buildRouter().ServeHTTP(rr, httptest.NewRequest(http.MethodPost, "/api/active", nil))

	assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
