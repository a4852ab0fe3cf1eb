// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-scripture-lens/internal/utils"
	"github.com/MKhiriev/go-scripture-lens/models"
)

// DefaultNoteTitle is the placeholder title of a freshly created note.
const DefaultNoteTitle = "Untitled Study"

// memoryNoteStore is the in-memory implementation of [NoteStore].
type memoryNoteStore struct {
	mu sync.RWMutex

	// notes is ordered newest first.
	notes    []models.Note
	activeID string
	insights []models.Insight

	// analysisSeq is the sequence number of the latest issued ticket.
	// Any change that clears the insight batch bumps it as well, which
	// turns every pending ticket stale.
	analysisSeq uint64

	seeded bool

	ids utils.IDGenerator
	now func() time.Time
}

// NewMemoryNoteStore returns an empty in-memory [NoteStore]. ids supplies
// note identifiers and now supplies timestamps; a nil now falls back to
// time.Now.
func NewMemoryNoteStore(ids utils.IDGenerator, now func() time.Time) NoteStore {
	if now == nil {
		now = time.Now
	}

	return &memoryNoteStore{
		notes: make([]models.Note, 0),
		ids:   ids,
		now:   now,
	}
}

func (s *memoryNoteStore) List() []models.Note {
	s.mu.RLock()
	defer s.mu.RUnlock()

	notes := make([]models.Note, len(s.notes))
	copy(notes, s.notes)
	return notes
}

func (s *memoryNoteStore) Get(id string) (models.Note, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, ErrNoteNotFound
	}

	return s.notes[idx], nil
}

func (s *memoryNoteStore) Active() (models.Note, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(s.activeID)
	if idx < 0 {
		return models.Note{}, false
	}

	return s.notes[idx], true
}

func (s *memoryNoteStore) Create() models.Note {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.insertLocked(DefaultNoteTitle, "")
}

func (s *memoryNoteStore) Update(id string, fields models.NoteFields) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.updateLocked(id, fields)
}

func (s *memoryNoteStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return ErrNoteNotFound
	}

	s.notes = slices.Delete(s.notes, idx, idx+1)
	if s.activeID == id {
		s.activeID = ""
		s.resetInsightsLocked()
	}

	return nil
}

func (s *memoryNoteStore) Select(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id == "" {
		s.activeID = ""
		s.resetInsightsLocked()
		return nil
	}

	if s.indexOf(id) < 0 {
		return ErrNoteNotFound
	}

	s.activeID = id
	return nil
}

func (s *memoryNoteStore) AppendInsight(insight models.Insight) (models.Note, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(s.activeID)
	if idx < 0 {
		return models.Note{}, ErrNoActiveNote
	}

	content := s.notes[idx].Content + insight.NoteBlock()
	return s.updateLocked(s.activeID, models.NoteFields{Content: &content})
}

func (s *memoryNoteStore) Insights() []models.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	insights := make([]models.Insight, len(s.insights))
	copy(insights, s.insights)
	return insights
}

func (s *memoryNoteStore) FindInsight(id string) (models.Insight, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, insight := range s.insights {
		if insight.ID == id {
			return insight, nil
		}
	}

	return models.Insight{}, ErrInsightNotFound
}

func (s *memoryNoteStore) BeginAnalysis(noteID string) AnalysisTicket {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.analysisSeq++
	return AnalysisTicket{Seq: s.analysisSeq, NoteID: noteID}
}

func (s *memoryNoteStore) ApplyInsights(ticket AnalysisTicket, insights []models.Insight) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ticket.Seq != s.analysisSeq || ticket.NoteID == "" || ticket.NoteID != s.activeID {
		return false
	}

	s.insights = slices.Clone(insights)
	return true
}

// insertLocked prepends a new note and selects it. Callers hold s.mu.
func (s *memoryNoteStore) insertLocked(title, content string) models.Note {
	now := s.now()
	note := models.Note{
		ID:        s.ids.Generate(),
		Title:     title,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	s.notes = slices.Insert(s.notes, 0, note)
	s.activeID = note.ID
	s.resetInsightsLocked()

	return note
}

// updateLocked applies fields to the note. Callers hold s.mu.
func (s *memoryNoteStore) updateLocked(id string, fields models.NoteFields) (models.Note, error) {
	idx := s.indexOf(id)
	if idx < 0 {
		return models.Note{}, ErrNoteNotFound
	}

	note := &s.notes[idx]
	if fields.Title != nil {
		note.Title = *fields.Title
	}
	if fields.Content != nil {
		note.Content = *fields.Content
	}

	// UpdatedAt never moves backwards, even if the clock does.
	now := s.now()
	if now.Before(note.UpdatedAt) {
		now = note.UpdatedAt
	}
	note.UpdatedAt = now

	return *note, nil
}

// resetInsightsLocked drops the batch and invalidates pending analyses.
func (s *memoryNoteStore) resetInsightsLocked() {
	s.insights = nil
	s.analysisSeq++
}

func (s *memoryNoteStore) indexOf(id string) int {
	if id == "" {
		return -1
	}

	return slices.IndexFunc(s.notes, func(n models.Note) bool {
		return n.ID == id
	})
}
