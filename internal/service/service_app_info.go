package service

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

// appInfoService reports the release the server runs, so clients can warn
// about a version mismatch on their About screen.
type appInfoService struct {
	version string
}

func NewAppInfoService(cfg config.App, logger *logger.Logger) (AppInfoService, error) {
	version := strings.TrimSpace(cfg.Version)
	if version == "" {
		logger.Error().Str("func", "NewAppInfoService").Msg("neither APP_VERSION nor a build version is set")
		return nil, ErrVersionIsNotSpecified
	}
	logger.Info().Str("version", version).Msg("serving policy desk")

	return &appInfoService{version: version}, nil
}

func (s *appInfoService) GetAppVersion(context.Context) string {
	return s.version
}
