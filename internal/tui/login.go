// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginResult is produced by the sign-in command.
type LoginResult struct {
	Identity models.Identity
	Err      error
}

// LoginModel is the Bubble Tea model for the sign-in screen. Tokens are
// issued by the identity service; the agent pastes one here and the session
// service verifies and remembers it.
type LoginModel struct {
	ctx     context.Context
	session service.ClientSessionService

	input      textinput.Model
	submitting bool
	errMsg     string

	identity   models.Identity
	quitByUser bool
}

// NewLoginModel creates a [LoginModel] with a masked token input.
func NewLoginModel(ctx context.Context, session service.ClientSessionService) *LoginModel {
	tokenInput := textinput.New()
	tokenInput.Placeholder = "access token"
	tokenInput.CharLimit = 4096
	tokenInput.Width = 60
	tokenInput.EchoMode = textinput.EchoPassword
	tokenInput.EchoCharacter = '*'
	tokenInput.Focus()

	return &LoginModel{
		ctx:     ctx,
		session: session,
		input:   tokenInput,
	}
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [LoginResult]  clears submitting state and quits on success.
//   - esc / ctrl+c   quits without signing in.
//   - enter          dispatches the async sign-in command.
//
// All other key events are forwarded to the token input.
func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if result, ok := msg.(LoginResult); ok {
		m.submitting = false
		if result.Err != nil {
			m.errMsg = humanizeLoginError(result.Err)
			return m, nil
		}
		m.identity = result.Identity
		return m, tea.Quit
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case keyMsg.String() == "ctrl+c", key.Matches(keyMsg, keys.esc):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(keyMsg, keys.enter):
			if m.submitting {
				return m, nil
			}

			token := strings.TrimSpace(m.input.Value())
			if token == "" {
				m.errMsg = "Token is required"
				return m, nil
			}

			m.errMsg = ""
			m.submitting = true
			return m, m.cmdSignIn(token)
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// View implements [tea.Model].
func (m *LoginModel) View() string {
	var b strings.Builder
	b.WriteString("Paste the access token issued for your agent account.\n\n")
	b.WriteString("Token │ [")
	b.WriteString(m.input.View())
	b.WriteString("]\n")

	if m.submitting {
		b.WriteString("\n[Signing in...]")
	} else {
		b.WriteString("\n[Sign in]")
	}
	b.WriteString(statusLines("", m.errMsg))

	return renderPage("SIGN IN", b.String(), "enter: sign in │ esc: quit")
}

func (m *LoginModel) cmdSignIn(token string) tea.Cmd {
	ctx := m.ctx
	session := m.session

	return func() tea.Msg {
		identity, err := session.SignIn(ctx, token)
		return LoginResult{Identity: identity, Err: err}
	}
}

func humanizeLoginError(err error) string {
	if err == nil {
		return ""
	}
	if msg := humanizeError(err); msg != err.Error() {
		return msg
	}
	return "Sign-in failed: " + err.Error()
}
