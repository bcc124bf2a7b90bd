package tui

import (
	"context"
	"errors"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/models"
	tea "github.com/charmbracelet/bubbletea"
)

var ErrUserQuit = errors.New("quit by user")

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo
	logger    *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// LoginFlow asks for an access token until the session service accepts one.
func (t *TUI) LoginFlow(ctx context.Context) (models.Identity, error) {
	finalModel, runErr := tea.NewProgram(NewLoginModel(ctx, t.services.SessionService), tea.WithAltScreen()).Run()
	if runErr != nil {
		return models.Identity{}, runErr
	}

	result, ok := finalModel.(*LoginModel)
	if !ok {
		return models.Identity{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Identity{}, ErrUserQuit
	}
	return result.identity, nil
}

// MainLoop runs the dashboard for identity until the agent quits or signs
// out. Coordinator events and realtime refetches are forwarded into the
// program for as long as it runs.
func (t *TUI) MainLoop(ctx context.Context, identity models.Identity, serverVersion string) (signedOut bool, err error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var program *tea.Program
	send := func(msg tea.Msg) {
		if program != nil {
			program.Send(msg)
		}
	}

	dashboards := t.services.DashboardService
	refresh := func(ctx context.Context, view models.PolicyFilter) {
		d, err := dashboards.Load(ctx, view)
		send(dashboardLoadedMsg{dashboard: d, err: err})
	}
	bind := func(view models.PolicyFilter) {
		t.services.Realtime.Bind(ctx, identity, view, refresh)
	}

	pages := map[string]tea.Model{
		pageDashboard: newDashboardModel(ctx, t.services, identity, bind),
		pageWizard:    newWizardModel(ctx),
		pageShares:    newSharesModel(ctx, t.services.SharingService),
		pageProfile:   newProfileModel(ctx, t.services.ProfileService),
		pageAdmin:     newAdminModel(ctx, t.services.ProfileService),
	}
	root := NewRootModel(pages, pageDashboard, t.buildInfo, serverVersion)
	program = tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx))

	coordinator := t.services.Coordinator
	unsubscribe := []func(){
		coordinator.OnProfileUpdated(func(p models.Profile) { send(profileUpdatedMsg{profile: p}) }),
		coordinator.OnOpenPolicy(func(req models.OpenPolicyRequest) { send(openPolicyMsg{req: req}) }),
		coordinator.OnDashboardRefresh(func() { send(refreshRequestedMsg{}) }),
	}
	defer func() {
		for _, fn := range unsubscribe {
			fn()
		}
	}()
	defer t.services.Realtime.Close()

	finalModel, runErr := program.Run()
	if runErr != nil && !errors.Is(runErr, tea.ErrProgramKilled) {
		t.logger.Err(runErr).Str("func", "TUI.MainLoop").Msg("dashboard stopped with error")
		return false, runErr
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return false, nil
	}
	return result.SignedOut(), nil
}
