package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-scripture-lens/internal/adapter"
	"github.com/MKhiriev/go-scripture-lens/internal/client"
	"github.com/MKhiriev/go-scripture-lens/internal/config"
	"github.com/MKhiriev/go-scripture-lens/internal/logger"
	"github.com/MKhiriev/go-scripture-lens/internal/service"
	"github.com/MKhiriev/go-scripture-lens/internal/store"
	"github.com/MKhiriev/go-scripture-lens/internal/tui"
	"github.com/MKhiriev/go-scripture-lens/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger("scripture-lens-client").Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger("scripture-lens-client", cfg.App.LogFile).WithLevel(cfg.App.LogLevel)
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	generator, err := adapter.NewGenerator(ctx, cfg.Analyzer, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create analyzer adapter")
	}

	appInfo, err := service.NewAppInfoService(cfg.App, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create app info service")
	}

	services := service.NewServices(store.NewStorages(log), generator, appInfo, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
