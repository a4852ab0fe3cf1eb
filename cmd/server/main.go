package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/handler"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/server"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("scripture-lens-server")
	cfg, err := config.GetServerConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().Str("address", cfg.Server.HTTPAddress).Bool("mcp", cfg.Server.MCPEnabled).
		Str("provider", cfg.Analyzer.Provider).Msg("received configs")

	generator, err := adapter.NewGenerator(context.Background(), cfg.Analyzer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating analyzer adapter")
	}

	appInfo, err := service.NewAppInfoService(cfg.App, models.NewAppBuildInfo(buildVersion, buildDate, buildCommit), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating app info service")
	}

	storages := store.NewStorages(log)
	services := service.NewServices(storages, generator, appInfo, log)
	services.NoteService.EnsureSample(context.Background())

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
