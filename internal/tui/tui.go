// Package tui implements the terminal UI of the gallery admin client: a
// password login screen and a store-tabbed app list with detail, delete, and
// flag-toggle flows.
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gongmyung/app-showcase/internal/logger"
	"github.com/gongmyung/app-showcase/internal/service"
)

// ErrUserQuit reports that the user closed the program from the login screen.
var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services *service.ClientServices
	logger   *logger.Logger
}

func New(services *service.ClientServices, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, logger: logger}, nil
}

// LoginFlow runs the password prompt until the server accepts the credential
// or the user quits.
func (t *TUI) LoginFlow(ctx context.Context) error {
	model := newLoginModel(ctx, t.services.Auth)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(loginModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		return ErrUserQuit
	}

	return nil
}

// MainLoop runs the gallery screen. It reports logout=true when the user
// asked to switch accounts rather than exit.
func (t *TUI) MainLoop(ctx context.Context) (logout bool, err error) {
	model := newGalleryModel(ctx, t.services)
	finalModel, runErr := tea.NewProgram(model, tea.WithAltScreen()).Run()
	if runErr != nil {
		return false, runErr
	}

	result, ok := finalModel.(galleryModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	return result.logout, nil
}
