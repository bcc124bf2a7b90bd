package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/client"
	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/tui"
	"github.com/MKhiriev/go-policy-desk/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("policy-desk-client")
	if err := run(buildInfo, log); err != nil {
		log.Fatal().Err(err).Msg("client stopped")
	}
}

// run owns the local database so it is closed on every return path.
func run(buildInfo models.AppBuildInfo, log *logger.Logger) error {
	cfg, err := config.GetClientConfig()
	if err != nil {
		return fmt.Errorf("error getting configs: %w", err)
	}
	logger.SetLevel(cfg.App.LogLevel)

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		return fmt.Errorf("create server adapter: %w", err)
	}

	db, err := store.NewConnectSQLite(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		return fmt.Errorf("open local storage: %w", err)
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		return fmt.Errorf("migrate local storage: %w", err)
	}

	services := service.NewClientServices(store.NewClientStorages(db, log), serverAdapter, cfg.Workers, log)

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		return fmt.Errorf("error creating ui: %w", err)
	}

	app, err := client.NewApp(services, serverAdapter, ui, cfg.App, log)
	if err != nil {
		return fmt.Errorf("init client app: %w", err)
	}
	return app.Run()
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
