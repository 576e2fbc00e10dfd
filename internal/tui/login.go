package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/gongmyung/app-showcase/internal/service"
)

// loginResult is produced by the async login command.
type loginResult struct {
	err error
}

// loginModel renders the single masked password prompt and dispatches the
// async login command on submit.
type loginModel struct {
	ctx  context.Context
	auth service.ClientAuthService

	input      textinput.Model
	submitting bool
	errMsg     string

	done       bool
	quitByUser bool
}

func newLoginModel(ctx context.Context, auth service.ClientAuthService) loginModel {
	passwordInput := textinput.New()
	passwordInput.Placeholder = "admin password"
	passwordInput.CharLimit = 256
	passwordInput.Width = 40
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '*'
	passwordInput.Focus()

	return loginModel{
		ctx:   ctx,
		auth:  auth,
		input: passwordInput,
	}
}

func (m loginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m loginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(loginResult); ok {
		m.submitting = false
		if result.err != nil {
			m.errMsg = result.err.Error()
			return m, nil
		}
		m.done = true
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "ctrl+c", "esc":
			m.quitByUser = true
			return m, tea.Quit
		case "enter":
			if m.submitting {
				return m, nil
			}

			password := m.input.Value()
			if password == "" {
				m.errMsg = "Password is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdLogin(password)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m loginModel) View() string {
	var b strings.Builder
	b.WriteString("Password │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]\n")
	} else {
		b.WriteString("\n[Sign in]\n")
	}

	if m.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(errorStyle.Render("Error: " + m.errMsg))
		b.WriteString("\n")
	}

	return renderPage("GALLERY ADMIN", strings.TrimRight(b.String(), "\n"), "esc: quit │ enter: sign in")
}

func (m loginModel) cmdLogin(password string) tea.Cmd {
	ctx := m.ctx
	auth := m.auth

	return func() tea.Msg {
		return loginResult{err: auth.Login(ctx, password)}
	}
}
