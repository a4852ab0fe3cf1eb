// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestGeminiAdapter(t *testing.T, serverURL, apiKey string) Generator {
	t.Helper()
	a, err := NewGeminiAdapter(context.Background(), config.Analyzer{
		Provider: config.ProviderGemini,
		APIKey:   apiKey,
		Model:    "gemini-2.5-flash",
		BaseURL:  serverURL,
	}, nil, logger.Nop())
	require.NoError(t, err)
	return a
}

func TestGeminiGenerate_Success(t *testing.T) {
	var body string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.True(t, strings.HasSuffix(r.URL.Path, "models/gemini-2.5-flash:generateContent"), r.URL.Path)

		raw, _ := io.ReadAll(r.Body)
		body = string(raw)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[{"text":"{\"insights\":"},{"text":"[]}"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestGeminiAdapter(t, srv.URL, "secret").Generate(context.Background(), testRequest)

	require.NoError(t, err)
	assert.Equal(t, `{"insights":[]}`, got)
	assert.Contains(t, body, "analyze this")
	assert.Contains(t, body, "be scholarly")
	assert.Contains(t, body, "application/json")
}

func TestGeminiGenerate_NoCandidates(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[]}`))
	}))
	defer srv.Close()

	got, err := newTestGeminiAdapter(t, srv.URL, "secret").Generate(context.Background(), testRequest)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestGeminiGenerate_SkipsThoughtParts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"candidates":[{"content":{"role":"model","parts":[` +
			`{"text":"let me think about the parable","thought":true},` +
			`{"text":"{\"insights\":[]}"}]}}]}`))
	}))
	defer srv.Close()

	got, err := newTestGeminiAdapter(t, srv.URL, "secret").Generate(context.Background(), testRequest)

	require.NoError(t, err)
	assert.Equal(t, `{"insights":[]}`, got)
}

func TestGeminiGenerate_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"code":500,"message":"boom","status":"INTERNAL"}}`))
	}))
	defer srv.Close()

	_, err := newTestGeminiAdapter(t, srv.URL, "secret").Generate(context.Background(), testRequest)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "generate content request")
}

func TestGeminiGenerate_MissingKeyMakesNoRequest(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	_, err := newTestGeminiAdapter(t, srv.URL, "").Generate(context.Background(), testRequest)

	assert.ErrorIs(t, err, ErrMissingAPIKey)
	assert.Zero(t, calls.Load())
}

// ── NewGenerator ────────────────────────────────────────────────────────────

func TestNewGenerator(t *testing.T) {
	tests := []struct {
		name    string
		cfg     config.Analyzer
		want    any
		wantErr error
	}{
		{name: "gemini", cfg: config.Analyzer{Provider: config.ProviderGemini, Model: "m"}, want: &geminiAdapter{}},
		{name: "default is gemini", cfg: config.Analyzer{Model: "m"}, want: &geminiAdapter{}},
		{name: "openai", cfg: config.Analyzer{Provider: config.ProviderOpenAI, Model: "m", BaseURL: "http://localhost:1/v1"}, want: &openAIAdapter{}},
		{name: "unknown", cfg: config.Analyzer{Provider: "palm"}, wantErr: ErrUnknownProvider},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g, err := NewGenerator(context.Background(), tt.cfg, logger.Nop())
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.IsType(t, tt.want, g)
		})
	}
}
