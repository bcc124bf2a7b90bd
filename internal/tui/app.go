package tui

import (
	"github.com/MKhiriev/go-policy-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

// RootModel switches between the client's pages. Dashboard messages reach
// the dashboard even while another page is shown, so a save in the wizard
// refreshes the list behind it. The About window ("v" on the dashboard)
// swallows keys until esc closes it.
type RootModel struct {
	pages   map[string]tea.Model
	current string

	signedOut     bool
	buildInfo     models.AppBuildInfo
	serverVersion string
	showBuildInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo, serverVersion string) RootModel {
	return RootModel{
		pages:         pages,
		current:       startPage,
		buildInfo:     buildInfo,
		serverVersion: serverVersion,
	}
}

func (r RootModel) Init() tea.Cmd {
	if page := r.page(); page != nil {
		return page.Init()
	}
	return nil
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		if handled, cmd := r.handleGlobalKey(key); handled {
			return r, cmd
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		return r.navigate(msg)
	case signedOutMsg:
		r.signedOut = msg.err == nil
		return r, tea.Quit
	}

	if isDashboardMsg(msg) {
		return r.updatePage(pageDashboard, msg)
	}
	return r.updatePage(r.current, msg)
}

// handleGlobalKey consumes keys that act the same on every page.
func (r *RootModel) handleGlobalKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "v":
		if r.current == pageDashboard {
			r.showBuildInfo = !r.showBuildInfo
			return true, nil
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return true, nil
		}
	}
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(msg NavigateTo) (tea.Model, tea.Cmd) {
	if _, exists := r.pages[msg.Page]; !exists {
		return r, nil
	}
	r.showBuildInfo = false
	r.current = msg.Page

	if msg.Payload == nil {
		return r, r.page().Init()
	}
	payload := msg.Payload
	return r, func() tea.Msg { return payload }
}

func isDashboardMsg(msg tea.Msg) bool {
	switch msg.(type) {
	case dashboardLoadedMsg, refreshRequestedMsg, profileUpdatedMsg, openPolicyMsg, openFailedMsg, policyDeletedMsg:
		return true
	}
	return false
}

func (r RootModel) updatePage(name string, msg tea.Msg) (tea.Model, tea.Cmd) {
	page, ok := r.pages[name]
	if !ok || page == nil {
		return r, nil
	}

	updated, cmd := page.Update(msg)
	r.pages[name] = updated
	return r, cmd
}

func (r RootModel) page() tea.Model {
	return r.pages[r.current]
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo, r.serverVersion)
	}
	page := r.page()
	if page == nil {
		return renderPage("POLICY DESK", "", "")
	}
	return page.View()
}

// SignedOut reports whether the session ended through sign-out rather than
// quit.
func (r RootModel) SignedOut() bool {
	return r.signedOut
}
