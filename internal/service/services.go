package service

import (
	"github.com/gongmyung/app-showcase/internal/config"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
)

type Services struct {
	GalleryService GalleryService
	ContentService ContentService
	AuthService    AuthService
	MailService    MailService
}

func NewServices(storages *store.Storages, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	transport, configured := NewSMTPTransport(cfg.Mail, logger)

	return &Services{
		GalleryService: NewGalleryService(storages.Apps, storages.Files, logger),
		ContentService: NewContentService(storages.Contents, storages.Files, logger),
		AuthService:    NewAuthService(cfg.App, logger),
		MailService:    NewMailService(transport, configured, logger),
	}
}
