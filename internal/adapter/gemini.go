// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"google.golang.org/genai"
)

// geminiAdapter implements [Generator] on top of the Gemini API.
type geminiAdapter struct {
	// client is nil when no API key was configured.
	client  *genai.Client
	model   string
	timeout time.Duration

	logger *logger.Logger
}

// NewGeminiAdapter builds a [Generator] for the Gemini API. The credential is
// taken from cfg only; ambient SDK environment variables are never consulted.
// An empty key yields an adapter whose Generate fails with [ErrMissingAPIKey].
//
// httpClient may be nil to use the SDK default.
func NewGeminiAdapter(ctx context.Context, cfg config.Analyzer, httpClient *http.Client, logger *logger.Logger) (Generator, error) {
	a := &geminiAdapter{
		model:   cfg.Model,
		timeout: cfg.RequestTimeout,
		logger:  logger,
	}

	if strings.TrimSpace(cfg.APIKey) == "" {
		logger.Warn().Msg("gemini adapter created without API key")
		return a, nil
	}

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.BaseURL != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: cfg.BaseURL}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}
	a.client = client

	logger.Debug().Str("model", cfg.Model).Msg("gemini adapter created")
	return a, nil
}

func (a *geminiAdapter) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if a.client == nil {
		return "", ErrMissingAPIKey
	}

	if a.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, a.timeout)
		defer cancel()
	}

	genCfg := &genai.GenerateContentConfig{
		ResponseMIMEType: "application/json",
		ResponseSchema:   req.Schema.toGenai(),
	}
	if req.SystemInstruction != "" {
		genCfg.SystemInstruction = &genai.Content{
			Parts: []*genai.Part{{Text: req.SystemInstruction}},
		}
	}

	resp, err := a.client.Models.GenerateContent(ctx, a.model, genai.Text(req.Prompt), genCfg)
	if err != nil {
		return "", fmt.Errorf("generate content request: %w", mapGenaiError(err))
	}

	if resp == nil {
		return "", nil
	}

	return resp.Text(), nil
}
