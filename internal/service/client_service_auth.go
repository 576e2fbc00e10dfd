package service

import (
	"context"
	"fmt"

	"github.com/gongmyung/app-showcase/internal/adapter"
	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/store"
)

type clientAuthService struct {
	cache   store.GalleryCache
	adapter adapter.ServerAdapter
	logger  *logger.Logger
}

// NewClientAuthService wires the adapter login against the cached session.
func NewClientAuthService(cache store.GalleryCache, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{cache: cache, adapter: serverAdapter, logger: logger}
}

func (c *clientAuthService) Login(ctx context.Context, password string) error {
	token, err := c.adapter.Login(ctx, password)
	if err != nil {
		return err
	}

	if err = c.cache.SaveSession(ctx, token); err != nil {
		// the session still works for this run, only persistence failed
		c.logger.Err(err).Msg("saving session failed")
	}

	return nil
}

func (c *clientAuthService) RestoreSession(ctx context.Context) error {
	token, err := c.cache.Session(ctx)
	if err != nil {
		return err
	}

	c.adapter.SetToken(token)
	return nil
}

func (c *clientAuthService) Logout(ctx context.Context) error {
	c.adapter.SetToken("")
	if err := c.cache.ClearSession(ctx); err != nil {
		return fmt.Errorf("clearing session failed: %w", err)
	}
	return nil
}
