package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-scripture-lens/internal/app"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/validators"
	"github.com/MKhiriev/go-scripture-lens/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── list / create ──

func TestListNotes_Empty(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/notes", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"notes":[],"activeId":null}`, rr.Body.String())
}

func TestCreateNote_WithoutBody(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/notes", nil)

	require.Equal(t, http.StatusCreated, rr.Code)
	note := decodeBody[models.Note](t, rr)
	assert.Equal(t, store.DefaultNoteTitle, note.Title)
	assert.Empty(t, note.Content)
	assert.Equal(t, "/api/notes/"+note.ID, rr.Header().Get("Location"))

	active, ok := env.store.Active()
	require.True(t, ok)
	assert.Equal(t, note.ID, active.ID)
}

func TestCreateNote_WithFields(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/notes", map[string]string{
		"title":   "John 1",
		"content": "In the beginning was the Word",
	})

	require.Equal(t, http.StatusCreated, rr.Code)
	note := decodeBody[models.Note](t, rr)
	assert.Equal(t, "John 1", note.Title)
	assert.Equal(t, "In the beginning was the Word", note.Content)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodPost, "/api/notes", strings.NewReader("{not json"))
	rr := httptest.NewRecorder()
	env.router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, app.MsgInvalidDataProvided, errorMessage(t, rr))
	assert.Empty(t, env.store.List(), "no note is created for a bad body")
}

func TestListNotes_NewestFirst(t *testing.T) {
	env := newTestEnv(t)
	first := env.store.Create()
	second := env.store.Create()

	rr := env.do(t, http.MethodGet, "/api/notes", nil)

	resp := decodeBody[notesResponse](t, rr)
	require.Len(t, resp.Notes, 2)
	assert.Equal(t, second.ID, resp.Notes[0].ID)
	assert.Equal(t, first.ID, resp.Notes[1].ID)
	require.NotNil(t, resp.ActiveID)
	assert.Equal(t, second.ID, *resp.ActiveID)
}

// ── get / update / delete ──

func TestGetNote_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/notes/missing", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Equal(t, app.MsgNoteNotFound, errorMessage(t, rr))
}

func TestUpdateNote_PartialFields(t *testing.T) {
	env := newTestEnv(t)
	note := env.store.Create()

	rr := env.do(t, http.MethodPatch, "/api/notes/"+note.ID, map[string]string{"content": "Grace"})

	require.Equal(t, http.StatusOK, rr.Code)
	updated := decodeBody[models.Note](t, rr)
	assert.Equal(t, store.DefaultNoteTitle, updated.Title, "title is untouched")
	assert.Equal(t, "Grace", updated.Content)
	assert.False(t, updated.UpdatedAt.Before(note.UpdatedAt))
}

func TestUpdateNote_Validation(t *testing.T) {
	tests := []struct {
		name string
		body any
	}{
		{name: "no fields", body: map[string]string{}},
		{name: "title too long", body: map[string]string{"title": strings.Repeat("a", validators.MaxTitleLength+1)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t)
			note := env.store.Create()

			rr := env.do(t, http.MethodPatch, "/api/notes/"+note.ID, tt.body)

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, app.MsgInvalidDataProvided, errorMessage(t, rr))

			got, err := env.store.Get(note.ID)
			require.NoError(t, err)
			assert.Equal(t, note, got, "note is untouched")
		})
	}
}

func TestCreateNote_InvalidTitleCreatesNothing(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPost, "/api/notes", map[string]string{"title": strings.Repeat("a", validators.MaxTitleLength+1)})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Empty(t, env.store.List())
}

func TestUpdateNote_Unknown(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodPatch, "/api/notes/nope", map[string]string{"title": "x"})

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestDeleteNote(t *testing.T) {
	env := newTestEnv(t)
	note := env.store.Create()

	rr := env.do(t, http.MethodDelete, "/api/notes/"+note.ID, nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)

	rr = env.do(t, http.MethodDelete, "/api/notes/"+note.ID, nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	_, ok := env.store.Active()
	assert.False(t, ok, "deleting the active note clears the selection")
}

// ── html ──

func TestGetNoteHTML_RendersMarkdown(t *testing.T) {
	env := newTestEnv(t)
	note := env.store.Create()
	_, err := env.store.Update(note.ID, models.NoteFields{Content: strPtr("# Sower\n\n*seed* on good soil")})
	require.NoError(t, err)

	rr := env.do(t, http.MethodGet, "/api/notes/"+note.ID+"/html", nil)

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "text/html; charset=utf-8", rr.Header().Get("Content-Type"))
	assert.Contains(t, rr.Body.String(), "<h1>Sower</h1>")
	assert.Contains(t, rr.Body.String(), "<em>seed</em>")
}

func TestGetNoteHTML_NotFound(t *testing.T) {
	env := newTestEnv(t)

	rr := env.do(t, http.MethodGet, "/api/notes/none/html", nil)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func strPtr(s string) *string { return &s }
