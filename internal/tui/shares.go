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

// sharesModel edits the sharing ledger of one owned policy. The list shown
// is always the ledger the last command returned.
type sharesModel struct {
	ctx     context.Context
	sharing service.ClientSharingService

	policyID string
	customer string
	ledger   models.ShareLedger
	idx      int

	input   textinput.Model
	loading bool
	status  string
	errMsg  string
}

func newSharesModel(ctx context.Context, sharing service.ClientSharingService) *sharesModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "agent@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40

	return &sharesModel{ctx: ctx, sharing: sharing, input: emailInput}
}

func (m *sharesModel) Init() tea.Cmd {
	return nil
}

func (m *sharesModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case sharesOpenedMsg:
		m.policyID, m.customer = msg.policyID, msg.customer
		m.ledger = models.ShareLedger{PolicyID: msg.policyID}
		m.idx = 0
		m.status, m.errMsg = "", ""
		m.input.SetValue("")
		m.loading = true
		return m, tea.Batch(m.input.Focus(), m.cmdLedger("", func(ctx context.Context) (models.ShareLedger, error) {
			return m.sharing.Ledger(ctx, msg.policyID)
		}))
	case ledgerLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.ledger = msg.ledger
		m.idx = clampIndex(m.idx, len(m.ledger.Grants))
		if msg.action != "" {
			m.status = msg.action
			return m, clearStatusAfter()
		}
		return m, nil
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch keyMsg.String() {
	case "esc":
		m.input.Blur()
		return m, navigate(pageDashboard, refreshRequestedMsg{})
	case "up":
		if m.idx > 0 {
			m.idx--
		}
		return m, nil
	case "down":
		if m.idx < len(m.ledger.Grants)-1 {
			m.idx++
		}
		return m, nil
	case "ctrl+x":
		if m.loading || len(m.ledger.Grants) == 0 {
			return m, nil
		}
		email := m.ledger.Grants[m.idx].RecipientEmail
		policyID := m.policyID
		m.loading = true
		return m, m.cmdLedger("Access revoked for "+email, func(ctx context.Context) (models.ShareLedger, error) {
			return m.sharing.Revoke(ctx, policyID, email)
		})
	}

	if key.Matches(keyMsg, keys.enter) {
		email := strings.TrimSpace(m.input.Value())
		if email == "" || m.loading {
			return m, nil
		}
		m.input.SetValue("")
		policyID := m.policyID
		m.loading = true
		return m, m.cmdLedger("Shared with "+models.NormalizeEmail(email), func(ctx context.Context) (models.ShareLedger, error) {
			return m.sharing.Grant(ctx, policyID, email)
		})
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *sharesModel) View() string {
	var b strings.Builder
	b.WriteString(row("Policy %s │ %s", m.policyID, valueOrDash(m.customer)))
	b.WriteString("\n")

	b.WriteString(row("  %-32s │ %s", "Recipient", "Shared on"))
	b.WriteString(row("────────────────────────────────────┼──────────────────"))
	if len(m.ledger.Grants) == 0 {
		b.WriteString("  not shared yet\n")
	}
	for i, g := range m.ledger.Grants {
		line := row("%s %-32s │ %s", cursor(i == m.idx), fitText(g.RecipientEmail, 32), formatTime(g.CreatedAt))
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
	}

	b.WriteString("\nShare with │ [")
	b.WriteString(m.input.View())
	b.WriteString("]")

	if m.loading {
		b.WriteString("\nUpdating...")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	return renderPage("SHARE APPLICATION", b.String(), "enter: share │ ↑/↓: select │ ctrl+x: revoke │ esc: back")
}

func (m *sharesModel) cmdLedger(action string, call func(ctx context.Context) (models.ShareLedger, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		ledger, err := call(ctx)
		return ledgerLoadedMsg{ledger: ledger, action: action, err: err}
	}
}
