package store

import "github.com/MKhiriev/go-scripture-lens/models"

// Sample note shown on first launch.
const (
	SampleNoteTitle   = "Study: The Parable of the Sower"
	SampleNoteContent = "I am researching the varying types of soil mentioned in the parable. " +
		"The seed represents the word, but the soil represents the condition of the heart. " +
		"I want to compare this with agricultural practices of the 1st century to understand " +
		"why a sower would let seeds fall on rocks."
)

func (s *memoryNoteStore) EnsureSeed() (models.Note, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seeded {
		return models.Note{}, false
	}
	s.seeded = true

	if len(s.notes) > 0 {
		return models.Note{}, false
	}

	return s.insertLocked(SampleNoteTitle, SampleNoteContent), true
}
