package main

import (
	"context"
	"fmt"

	"github.com/joho/godotenv"

	"github.com/gongmyung/app-showcase/internal/config"
	httpHandler "github.com/gongmyung/app-showcase/internal/handler/http"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/server"
	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()
	_ = godotenv.Load()

	log := logger.NewLogger("showcase-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" || cfg.App.Version == "dev" {
		if buildVersion != "" {
			cfg.App.Version = buildVersion
		}
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(storages, *cfg, log)
	handler := httpHandler.NewHandler(services, cfg, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
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
