package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/tui"
	"github.com/MKhiriev/go-policy-desk/models"
)

type App struct {
	services      *service.ClientServices
	serverAdapter adapter.ServerAdapter
	ui            UI
	cfg           config.ClientApp
	logger        *logger.Logger
}

func NewApp(services *service.ClientServices, serverAdapter adapter.ServerAdapter, ui UI, cfg config.ClientApp, logger *logger.Logger) (*App, error) {
	if services == nil || serverAdapter == nil || ui == nil {
		return nil, errors.New("client app requires services, server adapter and ui")
	}
	return &App{services: services, serverAdapter: serverAdapter, ui: ui, cfg: cfg, logger: logger}, nil
}

// Run signs the agent in and shows the dashboard. Signing out returns to the
// sign-in screen; quitting ends Run with a nil error.
func (a *App) Run() error {
	ctx := context.Background()

	for {
		identity, err := a.signIn(ctx)
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		signedOut, err := a.ui.MainLoop(ctx, identity, a.serverVersion(ctx))
		if err != nil {
			return fmt.Errorf("dashboard: %w", err)
		}
		if !signedOut {
			return nil
		}
		a.logger.Info().Str("user_id", identity.UserID).Msg("signed out")
	}
}

// signIn tries the configured token, then the remembered session, then asks
// the agent.
func (a *App) signIn(ctx context.Context) (models.Identity, error) {
	// the configured token is used once; after sign-out the agent picks
	if token := a.cfg.Token; token != "" {
		a.cfg.Token = ""
		identity, err := a.services.SessionService.SignIn(ctx, token)
		if err == nil {
			return identity, nil
		}
		a.logger.Warn().Err(err).Str("func", "App.signIn").Msg("configured token rejected")
	}

	identity, err := a.services.SessionService.Restore(ctx)
	if err == nil {
		return identity, nil
	}
	if !errors.Is(err, service.ErrNotSignedIn) {
		a.logger.Warn().Err(err).Str("func", "App.signIn").Msg("error restoring session")
	}

	return a.ui.LoginFlow(ctx)
}

func (a *App) serverVersion(ctx context.Context) string {
	version, err := a.serverAdapter.Version(ctx)
	if err != nil {
		a.logger.Warn().Err(err).Str("func", "App.serverVersion").Msg("error getting server version")
		return ""
	}
	return version
}
