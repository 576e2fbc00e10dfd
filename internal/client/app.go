// Package client implements the interactive admin client runtime.
//
// It wires the terminal UI, client services, and the local gallery cache
// into a single process lifecycle.
package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
	"github.com/gongmyung/app-showcase/internal/store"
	"github.com/gongmyung/app-showcase/internal/tui"
)

type App struct {
	services *service.ClientServices
	tui      *tui.TUI
	logger   *logger.Logger
}

func NewApp(services *service.ClientServices, ui *tui.TUI, logger *logger.Logger) (*App, error) {
	return &App{services: services, tui: ui, logger: logger}, nil
}

// Run restores the cached admin session or walks the login flow, brings the
// local gallery to a validated state, and hands control to the main screen.
// Logging out restarts the cycle.
func (a *App) Run() error {
	ctx := context.Background()

	if err := a.services.Auth.RestoreSession(ctx); err != nil {
		if !errors.Is(err, store.ErrLocalSessionNotFound) {
			return fmt.Errorf("restore session: %w", err)
		}
		if err = a.tui.LoginFlow(ctx); err != nil {
			return err
		}
	}

	if _, err := a.services.Gallery.Start(ctx); err != nil {
		return fmt.Errorf("start gallery: %w", err)
	}

	logout, err := a.tui.MainLoop(ctx)
	if err != nil {
		return err
	}
	if logout {
		if err = a.services.Auth.Logout(ctx); err != nil {
			a.logger.Err(err).Msg("logout failed")
		}
		return a.Run()
	}

	return nil
}
