package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/handler"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/server"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
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

	log := logger.NewLogger("policy-desk-server")
	cfg, err := config.GetStructuredConfig(buildVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	logger.SetLevel(cfg.App.LogLevel)

	log.Debug().Str("http", cfg.Server.HTTPAddress).Str("grpc", cfg.Server.GRPCAddress).Str("blob_driver", cfg.Storage.Blob.Driver).Msg("received configs")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	ids := utils.NewUUIDGenerator()

	storages, err := store.NewStorages(ctx, cfg.Storage, ids, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services, err := service.NewServices(storages, ids, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	// the server closes storages once both transports have stopped
	srv, err := server.NewServer(handlers, cfg.Server, log, storages)
	if err != nil {
		storages.Close() //nolint:errcheck
		log.Fatal().Err(err).Msg("error creating server")
	}

	if err = srv.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	for _, line := range info.Lines() {
		fmt.Println(line)
	}
}
