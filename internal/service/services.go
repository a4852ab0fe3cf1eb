package service

import (
	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/utils"
)

type Services struct {
	NoteService    NoteService
	InsightService InsightService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, generator adapter.Generator, appInfo AppInfoService, logger *logger.Logger) *Services {
	return &Services{
		NoteService:    NewNoteService(storages.NoteStore, logger),
		InsightService: NewInsightService(storages.NoteStore, generator, utils.NewUUIDGenerator(), logger),
		AppInfoService: appInfo,
	}
}
