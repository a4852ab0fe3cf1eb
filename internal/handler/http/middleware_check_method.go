// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod returns a handler for [chi.Mux.MethodNotAllowed] that
// answers 404 instead of 405 when the path exists but the method does not,
// so unsupported methods do not reveal the route.
//
// Routes of mounted sub-routers are resolved with [chi.Walk]. Only exact
// patterns are compared; parameterised segments are not expanded.
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		requestedURL := strings.TrimSuffix(r.URL.Path, "/")

		registered := false
		_ = chi.Walk(router, func(method, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
			if method == r.Method && strings.TrimSuffix(route, "/") == requestedURL {
				registered = true
			}
			return nil
		})

		if !registered {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
