// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
)

const chatCompletionsPath = "/chat/completions"

// openAIAdapter implements [Generator] against any OpenAI-compatible chat
// completions endpoint (hosted or a local model server).
type openAIAdapter struct {
	client *utils.HTTPClient
	apiKey string
	model  string

	logger *logger.Logger
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponseFormat struct {
	Type       string          `json:"type"`
	JSONSchema *chatJSONSchema `json:"json_schema,omitempty"`
}

type chatJSONSchema struct {
	Name   string         `json:"name"`
	Schema map[string]any `json:"schema"`
}

type chatRequest struct {
	Model          string             `json:"model"`
	Messages       []chatMessage      `json:"messages"`
	ResponseFormat chatResponseFormat `json:"response_format"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// NewOpenAIAdapter builds a [Generator] for an OpenAI-compatible endpoint
// rooted at cfg.BaseURL (e.g. "http://localhost:11434/v1").
func NewOpenAIAdapter(cfg config.Analyzer, logger *logger.Logger) (Generator, error) {
	if cfg.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	client := utils.NewHTTPClient(strings.TrimRight(cfg.BaseURL, "/"), cfg.RequestTimeout)

	logger.Debug().Str("base_url", cfg.BaseURL).Str("model", cfg.Model).Msg("openai adapter created")
	return &openAIAdapter{
		client: client,
		apiKey: strings.TrimSpace(cfg.APIKey),
		model:  cfg.Model,
		logger: logger,
	}, nil
}

func (a *openAIAdapter) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	if a.apiKey == "" {
		return "", ErrMissingAPIKey
	}

	body := chatRequest{
		Model:          a.model,
		Messages:       make([]chatMessage, 0, 2),
		ResponseFormat: chatResponseFormat{Type: "json_object"},
	}
	if req.SystemInstruction != "" {
		body.Messages = append(body.Messages, chatMessage{Role: "system", Content: req.SystemInstruction})
	}
	body.Messages = append(body.Messages, chatMessage{Role: "user", Content: req.Prompt})
	if req.Schema != nil {
		body.ResponseFormat = chatResponseFormat{
			Type:       "json_schema",
			JSONSchema: &chatJSONSchema{Name: "response", Schema: req.Schema.toJSONSchema()},
		}
	}

	resp, err := a.client.R().
		SetContext(ctx).
		SetAuthToken(a.apiKey).
		SetHeader("Content-Type", "application/json").
		SetBody(body).
		Post(chatCompletionsPath)
	if err != nil {
		return "", fmt.Errorf("chat completions request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	if len(resp.Body()) == 0 {
		return "", nil
	}

	var result chatResponse
	if err = json.Unmarshal(resp.Body(), &result); err != nil {
		return "", fmt.Errorf("%w: decode chat completions reply: %w", ErrUnexpectedResponse, err)
	}

	if len(result.Choices) == 0 {
		return "", nil
	}

	return result.Choices[0].Message.Content, nil
}
