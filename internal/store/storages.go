package store

import (
	"time"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
)

// Storages groups the storage components shared by the services.
type Storages struct {
	NoteStore NoteStore
}

// NewStorages builds the in-memory storages with the system clock and
// UUIDv7 identifiers.
func NewStorages(logger *logger.Logger) *Storages {
	logger.Debug().Msg("creating in-memory note store")

	return &Storages{
		NoteStore: NewMemoryNoteStore(utils.NewUUIDGenerator(), time.Now),
	}
}
