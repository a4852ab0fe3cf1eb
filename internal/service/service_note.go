// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/models"
)

type noteService struct {
	store store.NoteStore

	logger *logger.Logger
}

func NewNoteService(noteStore store.NoteStore, logger *logger.Logger) NoteService {
	return &noteService{
		store:  noteStore,
		logger: logger,
	}
}

func (s *noteService) EnsureSample(ctx context.Context) (models.Note, bool) {
	note, seeded := s.store.EnsureSeed()
	if seeded {
		s.logger.Info().Str("note_id", note.ID).Msg("sample note seeded")
	}

	return note, seeded
}

func (s *noteService) List(ctx context.Context) []models.Note {
	return s.store.List()
}

func (s *noteService) Get(ctx context.Context, id string) (models.Note, error) {
	note, err := s.store.Get(id)
	if err != nil {
		return models.Note{}, fmt.Errorf("get note %q: %w", id, err)
	}

	return note, nil
}

func (s *noteService) Active(ctx context.Context) (models.Note, bool) {
	return s.store.Active()
}

func (s *noteService) Create(ctx context.Context) models.Note {
	note := s.store.Create()
	s.logger.Debug().Str("note_id", note.ID).Msg("note created")

	return note
}

func (s *noteService) Update(ctx context.Context, id string, fields models.NoteFields) (models.Note, error) {
	note, err := s.store.Update(id, fields)
	if err != nil {
		s.logger.Err(err).Str("note_id", id).Msg("update note")
		return models.Note{}, fmt.Errorf("update note %q: %w", id, err)
	}

	return note, nil
}

func (s *noteService) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(id); err != nil {
		s.logger.Err(err).Str("note_id", id).Msg("delete note")
		return fmt.Errorf("delete note %q: %w", id, err)
	}

	s.logger.Debug().Str("note_id", id).Msg("note deleted")
	return nil
}

func (s *noteService) Select(ctx context.Context, id string) error {
	if err := s.store.Select(strings.TrimSpace(id)); err != nil {
		return fmt.Errorf("select note %q: %w", id, err)
	}

	return nil
}

func (s *noteService) Insights(ctx context.Context) []models.Insight {
	return s.store.Insights()
}

func (s *noteService) AppendInsight(ctx context.Context, insight models.Insight) (models.Note, error) {
	note, err := s.store.AppendInsight(insight)
	if err != nil {
		return models.Note{}, fmt.Errorf("append insight: %w", err)
	}

	s.logger.Debug().Str("note_id", note.ID).Str("insight_id", insight.ID).Msg("insight appended")
	return note, nil
}

func (s *noteService) AppendInsightByID(ctx context.Context, insightID string) (models.Note, error) {
	if strings.TrimSpace(insightID) == "" {
		return models.Note{}, fmt.Errorf("append insight: %w: empty insight id", ErrInvalidDataProvided)
	}

	insight, err := s.store.FindInsight(insightID)
	if err != nil {
		return models.Note{}, fmt.Errorf("append insight %q: %w", insightID, err)
	}

	return s.AppendInsight(ctx, insight)
}
