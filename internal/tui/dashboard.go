package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

var (
	scopeCycle  = []models.ListScope{models.ScopeOwned, models.ScopeShared, models.ScopeAll}
	statusCycle = []models.PolicyStatus{"", models.StatusDraft, models.StatusSubmitted}
)

type dashboardPanel int

const (
	panelPolicies dashboardPanel = iota
	panelNotifications
)

// ViewBinder keeps the realtime subscription on the view the dashboard
// shows.
type ViewBinder func(view models.PolicyFilter)

type dashboardModel struct {
	ctx      context.Context
	services *service.ClientServices
	identity models.Identity
	bind     ViewBinder

	view      models.PolicyFilter
	dashboard models.Dashboard
	profile   models.Profile

	panel         dashboardPanel
	idx           int
	notifIdx      int
	loading       bool
	opening       bool
	confirmDelete bool

	status string
	errMsg string
}

func newDashboardModel(ctx context.Context, services *service.ClientServices, identity models.Identity, bind ViewBinder) *dashboardModel {
	if bind == nil {
		bind = func(models.PolicyFilter) {}
	}
	return &dashboardModel{
		ctx:      ctx,
		services: services,
		identity: identity,
		bind:     bind,
		view:     models.PolicyFilter{Scope: models.ScopeOwned},
		profile:  models.DefaultProfile(identity),
	}
}

func (m *dashboardModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.cmdLoad(), m.cmdLoadProfile(), m.cmdBind())
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardLoadedMsg:
		// a realtime refetch for a view we already left
		if msg.err == nil && msg.dashboard.View != m.view {
			return m, nil
		}
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.dashboard = msg.dashboard
		m.idx = clampIndex(m.idx, len(m.dashboard.Policies))
		m.notifIdx = clampIndex(m.notifIdx, len(m.dashboard.Notifications))
		return m, nil
	case refreshRequestedMsg:
		m.opening = false
		m.loading = true
		return m, m.cmdLoad()
	case profileLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.profile = msg.profile
		return m, nil
	case profileUpdatedMsg:
		if msg.profile.ID == m.identity.UserID {
			m.profile = msg.profile
		}
		return m, nil
	case openPolicyMsg:
		m.opening = true
		req := msg.req
		return m, m.cmdOpen(func(ctx context.Context) (*service.Wizard, error) {
			return m.services.DeepLinks.Open(ctx, req)
		})
	case openFailedMsg:
		m.opening = false
		if errors.Is(msg.err, store.ErrSnapshotNotFound) {
			m.status = "No unsaved application to resume"
			return m, clearStatusAfter()
		}
		m.errMsg = humanizeError(msg.err)
		return m, nil
	case policyDeletedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.status = "Application deleted"
		return m, clearStatusAfter()
	case copiedMsg:
		if msg.err != nil {
			m.errMsg = "Clipboard unavailable: " + msg.err.Error()
			return m, nil
		}
		m.status = "Copied " + msg.what
		return m, clearStatusAfter()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.confirmDelete {
		return m.updateConfirm(keyMsg)
	}

	switch {
	case key.Matches(keyMsg, keys.quit):
		return m, tea.Quit
	case key.Matches(keyMsg, keys.signOut):
		return m, m.cmdSignOut()
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		return m, m.cmdLoad()
	case key.Matches(keyMsg, keys.notifications):
		if m.panel == panelPolicies {
			m.panel = panelNotifications
		} else {
			m.panel = panelPolicies
		}
		return m, nil
	case key.Matches(keyMsg, keys.profile):
		return m, navigate(pageProfile, nil)
	case key.Matches(keyMsg, keys.admin):
		if !m.profile.IsAdmin() {
			m.errMsg = humanizeError(service.ErrAdminRequired)
			return m, nil
		}
		return m, navigate(pageAdmin, nil)
	case key.Matches(keyMsg, keys.newItem):
		return m, navigate(pageWizard, wizardOpenedMsg{wizard: m.services.WizardService.New()})
	case key.Matches(keyMsg, keys.resume):
		return m, m.cmdOpen(func(ctx context.Context) (*service.Wizard, error) {
			return m.services.WizardService.Resume(ctx, models.NewApplicationKey)
		})
	}

	if m.panel == panelNotifications {
		return m.updateNotifications(keyMsg)
	}
	return m.updatePolicies(keyMsg)
}

func (m *dashboardModel) updatePolicies(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	policies := m.dashboard.Policies

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.idx > 0 {
			m.idx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.idx < len(policies)-1 {
			m.idx++
		}
	case key.Matches(keyMsg, keys.scope):
		m.view.Scope = nextScope(m.view.Scope)
		m.idx = 0
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.cmdBind())
	case key.Matches(keyMsg, keys.status):
		m.view.Status = nextStatus(m.view.Status)
		m.idx = 0
		m.loading = true
		return m, tea.Batch(m.cmdLoad(), m.cmdBind())
	}

	record, ok := m.selected()
	if !ok {
		return m, nil
	}
	owned := record.OwnerID == m.identity.UserID

	switch {
	case key.Matches(keyMsg, keys.enter):
		startStep := models.FirstStep
		if record.Status == models.StatusSubmitted || !owned {
			startStep = models.StepSummary
		}
		id := record.ID
		m.opening = true
		return m, m.cmdOpen(func(ctx context.Context) (*service.Wizard, error) {
			return m.services.WizardService.Open(ctx, id, startStep, !owned)
		})
	case key.Matches(keyMsg, keys.copy):
		return m, cmdCopy("policy id", record.ID)
	case key.Matches(keyMsg, keys.delete):
		if !owned {
			m.errMsg = "Only the owner can delete an application"
			return m, nil
		}
		m.confirmDelete = true
	case key.Matches(keyMsg, keys.share):
		if !owned {
			m.errMsg = "Only the owner can share an application"
			return m, nil
		}
		return m, navigate(pageShares, sharesOpenedMsg{
			policyID: record.ID,
			customer: record.FormData.Personal.FullName(),
		})
	}
	return m, nil
}

func (m *dashboardModel) updateNotifications(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	notifications := m.dashboard.Notifications

	switch {
	case key.Matches(keyMsg, keys.up):
		if m.notifIdx > 0 {
			m.notifIdx--
		}
	case key.Matches(keyMsg, keys.down):
		if m.notifIdx < len(notifications)-1 {
			m.notifIdx++
		}
	case key.Matches(keyMsg, keys.enter):
		if len(notifications) == 0 {
			return m, nil
		}
		n := notifications[m.notifIdx]
		coordinator := m.services.Coordinator
		// published off the event loop: subscribers send back into the program
		return m, func() tea.Msg {
			coordinator.PublishOpenPolicy(models.OpenPolicyRequest{PolicyID: n.PolicyID, NotificationID: n.ID})
			return nil
		}
	}
	return m, nil
}

func (m *dashboardModel) updateConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(keyMsg, keys.yes):
		m.confirmDelete = false
		record, ok := m.selected()
		if !ok {
			return m, nil
		}
		return m, m.cmdDelete(record.ID)
	case key.Matches(keyMsg, keys.no):
		m.confirmDelete = false
	}
	return m, nil
}

func (m *dashboardModel) selected() (models.PolicyRecord, bool) {
	if m.idx < 0 || m.idx >= len(m.dashboard.Policies) {
		return models.PolicyRecord{}, false
	}
	return m.dashboard.Policies[m.idx], true
}

func (m *dashboardModel) View() string {
	var b strings.Builder

	b.WriteString(row("Agent: %s (%s) │ %s", valueOrDash(m.profile.DisplayName()), m.profile.Role, m.identity.Email))
	if m.profile.AgentCode != "" || m.profile.DOName != "" {
		b.WriteString(row("Agent code: %s │ DO: %s %s", valueOrDash(m.profile.AgentCode), valueOrDash(m.profile.DOName), m.profile.DOCode))
	}
	b.WriteString("\n")

	counts := m.dashboard.Counts
	b.WriteString(row("Submitted: %d │ Drafts: %d │ Shared with me: %d │ Notifications: %s",
		counts.Submitted, counts.Drafts, counts.Shared, badge(m.dashboard.Unread)))
	b.WriteString(row("View: %s │ Status: %s", scopeLabel(m.view.Scope), statusLabel(m.view.Status)))
	b.WriteString("\n")

	if m.panel == panelNotifications {
		b.WriteString(m.viewNotifications())
	} else {
		b.WriteString(m.viewPolicies())
	}

	if m.loading {
		b.WriteString("\nLoading...")
	}
	if m.opening {
		b.WriteString("\nOpening...")
	}
	b.WriteString(statusLines(m.status, m.errMsg))

	if m.confirmDelete {
		if record, ok := m.selected(); ok {
			b.WriteString("\n\n")
			b.WriteString(confirmDeleteView(record))
		}
	}

	hotKeys := "enter: open │ n: new │ r: resume unsaved │ d: delete │ s: share │ c: copy id │ tab: view │ f: status │ i: notifications │ p: profile │ v: about │ L: sign out │ q: quit"
	if m.panel == panelNotifications {
		hotKeys = "enter: open policy │ i: back to policies │ g: refresh │ q: quit"
	}
	return renderPage("POLICY DESK", b.String(), hotKeys)
}

func (m *dashboardModel) viewPolicies() string {
	var b strings.Builder
	b.WriteString(row("  %-8s │ %-24s │ %-9s │ %-6s │ %s", "ID", "Customer", "Status", "Shares", "Modified"))
	b.WriteString(row("──────────┼──────────────────────────┼───────────┼────────┼──────────────────"))

	if len(m.dashboard.Policies) == 0 {
		b.WriteString("  no applications\n")
	}
	for i, p := range m.dashboard.Policies {
		line := row("%s %-8s │ %-24s │ %-9s │ %-6d │ %s",
			cursor(i == m.idx),
			shortID(p.ID),
			fitText(valueOrDash(p.FormData.Personal.FullName()), 24),
			p.Status,
			p.SharedCount,
			formatTime(p.LastModified),
		)
		if i == m.idx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m *dashboardModel) viewNotifications() string {
	var b strings.Builder
	if len(m.dashboard.Notifications) == 0 {
		return "  no notifications\n"
	}
	for i, n := range m.dashboard.Notifications {
		mark := " "
		if !n.IsRead {
			mark = "•"
		}
		line := row("%s %s %s │ %s", cursor(i == m.notifIdx), mark, formatTime(n.CreatedAt), n.Message)
		if i == m.notifIdx {
			line = selectedStyle.Render(line)
		}
		b.WriteString(line)
	}
	return b.String()
}

func (m *dashboardModel) cmdLoad() tea.Cmd {
	ctx, dashboards, view := m.ctx, m.services.DashboardService, m.view
	return func() tea.Msg {
		d, err := dashboards.Load(ctx, view)
		return dashboardLoadedMsg{dashboard: d, err: err}
	}
}

func (m *dashboardModel) cmdLoadProfile() tea.Cmd {
	ctx, profiles := m.ctx, m.services.ProfileService
	return func() tea.Msg {
		p, err := profiles.Load(ctx)
		return profileLoadedMsg{profile: p, err: err}
	}
}

func (m *dashboardModel) cmdBind() tea.Cmd {
	bind, view := m.bind, m.view
	return func() tea.Msg {
		bind(view)
		return nil
	}
}

func (m *dashboardModel) cmdOpen(open func(ctx context.Context) (*service.Wizard, error)) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		w, err := open(ctx)
		if err != nil {
			return openFailedMsg{err: err}
		}
		return NavigateTo{Page: pageWizard, Payload: wizardOpenedMsg{wizard: w}}
	}
}

func (m *dashboardModel) cmdDelete(id string) tea.Cmd {
	ctx, dashboards := m.ctx, m.services.DashboardService
	return func() tea.Msg {
		return policyDeletedMsg{err: dashboards.Delete(ctx, id)}
	}
}

func (m *dashboardModel) cmdSignOut() tea.Cmd {
	ctx, session := m.ctx, m.services.SessionService
	return func() tea.Msg {
		return signedOutMsg{err: session.SignOut(ctx)}
	}
}

func navigate(page string, payload tea.Msg) tea.Cmd {
	return func() tea.Msg { return NavigateTo{Page: page, Payload: payload} }
}

func cmdCopy(what, value string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{what: what, err: clipboard.WriteAll(value)}
	}
}

func clearStatusAfter() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg { return clearStatusMsg{} })
}

func clampIndex(idx, n int) int {
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}

func nextScope(s models.ListScope) models.ListScope {
	for i, scope := range scopeCycle {
		if scope == s {
			return scopeCycle[(i+1)%len(scopeCycle)]
		}
	}
	return models.ScopeOwned
}

func nextStatus(s models.PolicyStatus) models.PolicyStatus {
	for i, status := range statusCycle {
		if status == s {
			return statusCycle[(i+1)%len(statusCycle)]
		}
	}
	return ""
}

func scopeLabel(s models.ListScope) string {
	switch s {
	case models.ScopeShared:
		return "shared with me"
	case models.ScopeAll:
		return "all visible"
	}
	return "my applications"
}

func statusLabel(s models.PolicyStatus) string {
	switch s {
	case models.StatusDraft:
		return "drafts"
	case models.StatusSubmitted:
		return "submitted"
	}
	return "any"
}

func badge(unread int) string {
	if unread == 0 {
		return "0"
	}
	return badgeStyle.Render(fmt.Sprintf("%d new", unread))
}
