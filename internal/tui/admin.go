package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// adminModel lists every agent and toggles their role.
type adminModel struct {
	ctx      context.Context
	profiles service.ClientProfileService

	list    []models.Profile
	idx     int
	loading bool
	status  string
	errMsg  string
}

func newAdminModel(ctx context.Context, profiles service.ClientProfileService) *adminModel {
	return &adminModel{ctx: ctx, profiles: profiles}
}

func (m *adminModel) Init() tea.Cmd {
	m.loading = true
	m.status, m.errMsg = "", ""
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		list, err := profiles.List(ctx)
		return profilesLoadedMsg{profiles: list, err: err}
	}
}

func (m *adminModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profilesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.list = msg.profiles
		m.idx = clampIndex(m.idx, len(m.list))
		return m, nil
	case roleUpdatedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		for i := range m.list {
			if m.list[i].ID == msg.profile.ID {
				m.list[i] = msg.profile
			}
		}
		m.errMsg = ""
		m.status = msg.profile.Email + " is now " + string(msg.profile.Role)
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, navigate(pageDashboard, nil)
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(m.list)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.toggleRole):
		if m.loading || len(m.list) == 0 {
			return m, nil
		}
		target := m.list[m.idx]
		role := models.RoleAdmin
		if target.IsAdmin() {
			role = models.RoleAgent
		}
		m.loading = true
		return m, m.cmdUpdateRole(target.ID, role)
	}
	return m, nil
}

func (m *adminModel) View() string {
	var b strings.Builder
	b.WriteString(row("  %-28s │ %-20s │ %-10s │ %s", "Email", "Name", "Agent code", "Role"))
	b.WriteString(row("──────────────────────────────┼──────────────────────┼────────────┼───────"))
	if len(m.list) == 0 && !m.loading {
		b.WriteString("  no agents\n")
	}
	for i, p := range m.list {
		line := row("%s %-28s │ %-20s │ %-10s │ %s",
			cursor(i == m.idx),
			fitText(p.Email, 28),
			fitText(valueOrDash(p.DisplayName()), 20),
			valueOrDash(p.AgentCode),
			p.Role,
		)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
	}
	if m.loading {
		b.WriteString("\nLoading...")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	return renderPage("AGENTS", b.String(), "↑/↓: select │ r: toggle admin │ esc: back")
}

func (m *adminModel) cmdUpdateRole(userID string, role models.Role) tea.Cmd {
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		p, err := profiles.UpdateRole(ctx, userID, role)
		return roleUpdatedMsg{profile: p, err: err}
	}
}
