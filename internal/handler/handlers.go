package handler

import (
	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/handler/grpc"
	"github.com/MKhiriev/go-policy-desk/internal/handler/http"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
)

// Handlers holds one handler per configured transport. A nil field means the
// transport has no listen address.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, cfg config.StructuredConfig, logger *logger.Logger) (*Handlers, error) {
	if cfg.Server.HTTPAddress == "" && cfg.Server.GRPCAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}
	if cfg.Server.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, httpSettings(cfg), logger)
	}
	if cfg.Server.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(services, logger)
	}
	logger.Info().Bool("http", handlers.HTTP != nil).Bool("grpc", handlers.GRPC != nil).Msg("handlers created")

	return handlers, nil
}

// httpSettings serves the blob directory only for the file driver; the
// object stores hand out their own URLs.
func httpSettings(cfg config.StructuredConfig) http.Settings {
	settings := http.Settings{
		RequestTimeout: cfg.Server.RequestTimeout,
		MaxUploadSize:  cfg.Server.MaxUploadSize,
	}
	if cfg.Storage.Blob.Driver == config.BlobDriverFile {
		settings.BlobDir = cfg.Storage.Blob.Dir
	}
	return settings
}
