// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
	"github.com/MKhiriev/go-scripture-lens/models"
)

type insightService struct {
	store     store.NoteStore
	generator adapter.Generator
	ids       utils.IDGenerator

	logger *logger.Logger
}

func NewInsightService(noteStore store.NoteStore, generator adapter.Generator, ids utils.IDGenerator, logger *logger.Logger) InsightService {
	return &insightService{
		store:     noteStore,
		generator: generator,
		ids:       ids,
		logger:    logger,
	}
}

func (s *insightService) Analyze(ctx context.Context, note models.Note) ([]models.Insight, error) {
	log := s.logger

	if strings.TrimSpace(note.Content) == "" {
		return nil, ErrBlankContent
	}

	text, err := s.generator.Generate(ctx, newGenerationRequest(note))
	if err != nil {
		if errors.Is(err, adapter.ErrMissingAPIKey) {
			log.Warn().Str("note_id", note.ID).Msg("analyzer api key is not configured")
			return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
		}

		log.Err(err).Str("note_id", note.ID).Msg("analysis request failed")
		return nil, fmt.Errorf("%w: %w", ErrAnalysisFailed, err)
	}

	insights, err := s.parseReply(text)
	if err != nil {
		log.Err(err).Str("note_id", note.ID).Msg("analysis reply rejected")
		return nil, err
	}

	log.Debug().Str("note_id", note.ID).Int("insights", len(insights)).Msg("note analyzed")
	return insights, nil
}

func (s *insightService) AnalyzeActive(ctx context.Context) (AnalysisResult, error) {
	note, ok := s.store.Active()
	if !ok {
		return AnalysisResult{}, store.ErrNoActiveNote
	}
	if strings.TrimSpace(note.Content) == "" {
		return AnalysisResult{}, ErrBlankContent
	}

	ticket := s.store.BeginAnalysis(note.ID)

	insights, err := s.Analyze(ctx, note)
	if err != nil {
		return AnalysisResult{}, err
	}

	applied := s.store.ApplyInsights(ticket, insights)
	if !applied {
		s.logger.Info().
			Str("note_id", note.ID).
			Uint64("seq", ticket.Seq).
			Msg("stale analysis result discarded")
	}

	return AnalysisResult{
		NoteID:   note.ID,
		Insights: insights,
		Applied:  applied,
	}, nil
}

// ── reply parsing ──

type insightsReply struct {
	Insights *[]insightReply `json:"insights"`
}

type insightReply struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Reference   *string `json:"reference"`
	Type        string  `json:"type"`
}

// parseReply decodes the generated JSON text. Empty text yields an empty
// batch; a reply without an "insights" array is malformed.
func (s *insightService) parseReply(text string) ([]models.Insight, error) {
	text = trimCodeFence(text)
	if text == "" {
		return []models.Insight{}, nil
	}

	var reply insightsReply
	if err := json.Unmarshal([]byte(text), &reply); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrAnalysisFailed, ErrMalformedReply, err)
	}
	if reply.Insights == nil {
		return nil, fmt.Errorf("%w: %w: missing insights", ErrAnalysisFailed, ErrMalformedReply)
	}

	insights := make([]models.Insight, 0, len(*reply.Insights))
	for i, item := range *reply.Insights {
		if strings.TrimSpace(item.Title) == "" || strings.TrimSpace(item.Description) == "" {
			return nil, fmt.Errorf("%w: %w: insight %d has no title or description",
				ErrAnalysisFailed, ErrMalformedReply, i)
		}

		insightType, ok := models.ParseInsightType(item.Type)
		if !ok {
			s.logger.Warn().Str("type", item.Type).Msg("unknown insight type, using application")
			insightType = models.InsightTypeApplication
		}

		insights = append(insights, models.Insight{
			ID:          s.ids.Generate(),
			Title:       item.Title,
			Description: item.Description,
			Reference:   item.Reference,
			Type:        insightType,
		})
	}

	return insights, nil
}

// trimCodeFence strips a surrounding ``` or ```json fence.
func trimCodeFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}

	text = strings.TrimPrefix(text, "```")
	if nl := strings.IndexByte(text, '\n'); nl >= 0 {
		text = text[nl+1:]
	} else {
		text = strings.TrimPrefix(text, "json")
	}
	text = strings.TrimSuffix(strings.TrimSpace(text), "```")

	return strings.TrimSpace(text)
}
