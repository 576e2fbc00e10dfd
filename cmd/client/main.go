package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/gongmyung/app-showcase/internal/adapter"
	"github.com/gongmyung/app-showcase/internal/client"
	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/internal/tui"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	_ = godotenv.Load()

	log := logger.NewClientLogger("showcase-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	prober, err := adapter.NewMediaProber(cfg.Adapter, cfg.Probe, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create media prober")
	}

	cache, err := store.NewSQLiteGalleryCache(context.Background(), cfg.Cache.Path, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create gallery cache")
	}

	services := service.NewClientServices(cache, serverAdapter, prober, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return
		}
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
