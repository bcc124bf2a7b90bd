package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var profileLabels = []string{"First name", "Last name", "Agent code", "DO name", "DO code"}

// profileModel edits the signed-in agent's profile. Saved changes reach the
// dashboard header through the coordinator.
type profileModel struct {
	ctx      context.Context
	profiles service.ClientProfileService

	profile models.Profile
	inputs  []textinput.Model
	focus   int

	loading bool
	status  string
	errMsg  string
}

func newProfileModel(ctx context.Context, profiles service.ClientProfileService) *profileModel {
	inputs := make([]textinput.Model, len(profileLabels))
	for i := range inputs {
		in := textinput.New()
		in.Prompt = ""
		in.CharLimit = 128
		in.Width = 40
		inputs[i] = in
	}
	return &profileModel{ctx: ctx, profiles: profiles, inputs: inputs}
}

func (m *profileModel) Init() tea.Cmd {
	m.loading = true
	m.status, m.errMsg = "", ""
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		p, err := profiles.Load(ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m *profileModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.fill(msg.profile)
		return m, textinput.Blink
	case profileSavedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = "Profile saved"
		m.fill(msg.profile)
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return m, navigate(pageDashboard, nil)
		case "tab", "down":
			m.setFocus(m.focus + 1)
			return m, nil
		case "shift+tab", "up":
			m.setFocus(m.focus - 1)
			return m, nil
		case "enter", "ctrl+s":
			if m.loading {
				return m, nil
			}
			m.loading = true
			return m, m.cmdSave(m.update())
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

func (m *profileModel) fill(p models.Profile) {
	m.profile = p
	values := []string{p.FirstName, p.LastName, p.AgentCode, p.DOName, p.DOCode}
	for i, v := range values {
		m.inputs[i].SetValue(v)
	}
	m.setFocus(m.focus)
}

func (m *profileModel) update() models.ProfileUpdate {
	return models.ProfileUpdate{
		FirstName: strings.TrimSpace(m.inputs[0].Value()),
		LastName:  strings.TrimSpace(m.inputs[1].Value()),
		AgentCode: strings.TrimSpace(m.inputs[2].Value()),
		DOName:    strings.TrimSpace(m.inputs[3].Value()),
		DOCode:    strings.TrimSpace(m.inputs[4].Value()),
	}
}

func (m *profileModel) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = (i + len(m.inputs)) % len(m.inputs)
	m.inputs[m.focus].Focus()
}

func (m *profileModel) View() string {
	var b strings.Builder
	b.WriteString(row("Email: %s │ Role: %s", valueOrDash(m.profile.Email), m.profile.Role))
	b.WriteString("\n")
	for i, label := range profileLabels {
		b.WriteString(row("%s %-12s │ [%s]", cursor(i == m.focus), label, m.inputs[i].View()))
	}
	if m.loading {
		b.WriteString("\nLoading...")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	return renderPage("PROFILE", b.String(), "tab: next field │ enter: save │ esc: back")
}

func (m *profileModel) cmdSave(update models.ProfileUpdate) tea.Cmd {
	ctx, profiles := m.ctx, m.profiles
	return func() tea.Msg {
		p, err := profiles.Update(ctx, update)
		return profileSavedMsg{profile: p, err: err}
	}
}
