package service

import (
	"github.com/gongmyung/app-showcase/internal/adapter"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
)

// ClientServices groups every service the terminal admin client runs on.
type ClientServices struct {
	Gallery GallerySynchronizer
	Auth    ClientAuthService
}

func NewClientServices(cache store.GalleryCache, serverAdapter adapter.ServerAdapter, prober adapter.MediaProber, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		Gallery: NewGallerySynchronizer(cache, serverAdapter, prober, logger),
		Auth:    NewClientAuthService(cache, serverAdapter, logger),
	}
}
