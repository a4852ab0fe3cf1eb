package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
)

var (
	errNoServicesProvided = errors.New("client: no services provided")
	errNoUIProvided       = errors.New("client: no ui provided")
)

type App struct {
	services *service.Services
	ui       UI

	logger *logger.Logger
}

func NewApp(services *service.Services, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errNoServicesProvided
	}
	if ui == nil {
		return nil, errNoUIProvided
	}

	return &App{
		services: services,
		ui:       ui,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context) error {
	if note, seeded := a.services.NoteService.EnsureSample(ctx); seeded {
		a.logger.Debug().Str("note_id", note.ID).Msg("first start: sample note created")
	}

	a.logger.Info().Msg("client started")
	defer a.logger.Info().Msg("client stopped")

	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}

	return nil
}
