// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides clients for the external text-generation services
// used to analyze notes.
//
// The primary abstraction is [Generator], which decouples the insight service
// from the provider. Two implementations ship with the package: the Gemini
// API through Google's genai SDK and any OpenAI-compatible chat completions
// endpoint over REST.
//
// Transport failures are mapped to the sentinel errors in errors.go, so
// callers can use [errors.Is] regardless of the provider.
package adapter

import (
	"context"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/generator_mock.go -package=mock

// Generator sends one structured-output request to a text-generation service.
type Generator interface {
	// Generate returns the raw text of the reply, expected to be JSON
	// matching req.Schema. An empty string means the service answered
	// without content.
	//
	// Implementations must return [ErrMissingAPIKey] without touching the
	// network when no credential was configured. No retries are made.
	Generate(ctx context.Context, req GenerationRequest) (string, error)
}

// GenerationRequest is a provider-neutral structured-output request.
type GenerationRequest struct {
	// SystemInstruction frames the model's behaviour.
	SystemInstruction string
	// Prompt is the user turn.
	Prompt string
	// Schema constrains the JSON reply. Nil leaves the reply free-form JSON.
	Schema *Schema
}
