package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
)

type errorMapping struct {
	status  int
	message string
}

// errorStatusMap is checked in order, so more specific errors go first.
var errorStatusMap = []struct {
	target error
	errorMapping
}{
	{errInvalidJSON, errorMapping{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrInvalidDataProvided, errorMapping{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{validators.ErrValidation, errorMapping{http.StatusBadRequest, app.MsgInvalidDataProvided}},
	{service.ErrBlankContent, errorMapping{http.StatusBadRequest, app.MsgBlankContent}},
	{service.ErrConfiguration, errorMapping{http.StatusServiceUnavailable, app.MsgAnalyzerNotConfigured}},
	{service.ErrAnalysisFailed, errorMapping{http.StatusBadGateway, app.MsgAnalysisFailed}},

	{store.ErrNoteNotFound, errorMapping{http.StatusNotFound, app.MsgNoteNotFound}},
	{store.ErrInsightNotFound, errorMapping{http.StatusNotFound, app.MsgInsightNotFound}},
	{store.ErrNoActiveNote, errorMapping{http.StatusConflict, app.MsgNoActiveNote}},
}

func mapError(err error) errorMapping {
	for _, m := range errorStatusMap {
		if errors.Is(err, m.target) {
			return m.errorMapping
		}
	}
	return errorMapping{http.StatusInternalServerError, app.MsgInternalServerError}
}

func statusFromError(err error) int {
	return mapError(err).status
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError logs err and writes its mapped status with a JSON body.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	m := mapError(err)

	log := logger.FromRequest(r)
	if m.status >= http.StatusInternalServerError {
		log.Err(err).Int("status", m.status).Msg("request failed")
	} else {
		log.Debug().Err(err).Int("status", m.status).Msg("request rejected")
	}

	utils.WriteJSON(w, errorResponse{Error: m.message}, m.status)
}
