package tui

import (
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

// Page names known to [RootModel].
const (
	pageDashboard = "dashboard"
	pageWizard    = "wizard"
	pageShares    = "shares"
	pageProfile   = "profile"
	pageAdmin     = "admin"
)

// NavigateTo switches the active page. A non-nil Payload is delivered to the
// new page instead of running its Init.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

type dashboardLoadedMsg struct {
	dashboard models.Dashboard
	err       error
}

type refreshRequestedMsg struct{}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type profileUpdatedMsg struct {
	profile models.Profile
}

type profileSavedMsg struct {
	profile models.Profile
	err     error
}

type openPolicyMsg struct {
	req models.OpenPolicyRequest
}

type openFailedMsg struct {
	err error
}

type wizardOpenedMsg struct {
	wizard *service.Wizard
}

type wizardSavedMsg struct {
	record models.PolicyRecord
	submit bool
	err    error
}

type policyDeletedMsg struct {
	err error
}

type sharesOpenedMsg struct {
	policyID string
	customer string
}

type ledgerLoadedMsg struct {
	ledger models.ShareLedger
	action string
	err    error
}

type profilesLoadedMsg struct {
	profiles []models.Profile
	err      error
}

type roleUpdatedMsg struct {
	profile models.Profile
	err     error
}

type copiedMsg struct {
	what string
	err  error
}

type signedOutMsg struct {
	err error
}

type clearStatusMsg struct{}
