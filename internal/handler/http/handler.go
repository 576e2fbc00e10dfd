package http

import (
	"time"

	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
)

// Handler owns the REST routes of the showcase server. It translates HTTP
// requests into service calls and service errors back into status codes.
type Handler struct {
	services *service.Services

	uploadDir      string
	maxUploadBytes int64
	requestTimeout time.Duration
	version        string

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		uploadDir:      cfg.Storage.Files.UploadDir,
		maxUploadBytes: cfg.Storage.Files.MaxUploadBytes,
		requestTimeout: cfg.Server.RequestTimeout,
		version:        cfg.App.Version,
		logger:         logger,
	}
}
