// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
)

var errNoServices = errors.New("tui: services are not provided")

// humanizeError turns a service error into the text shown to the user.
// Configuration problems get an actionable message distinct from transient
// analysis failures.
func humanizeError(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, service.ErrConfiguration):
		return app.MsgAnalyzerNotConfigured
	case errors.Is(err, service.ErrAnalysisFailed):
		return app.MsgAnalysisFailed
	case errors.Is(err, service.ErrBlankContent):
		return app.MsgBlankContent
	case errors.Is(err, store.ErrNoActiveNote):
		return app.MsgNoActiveNote
	case errors.Is(err, store.ErrNoteNotFound):
		return app.MsgNoteNotFound
	case errors.Is(err, store.ErrInsightNotFound):
		return app.MsgInsightNotFound
	case errors.Is(err, validators.ErrValidation):
		return err.Error()
	}

	return err.Error()
}
