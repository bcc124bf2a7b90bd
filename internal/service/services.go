package service

import (
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
)

type Services struct {
	AuthService         AuthService
	AppInfoService      AppInfoService
	PolicyService       PolicyService
	SharingService      SharingService
	NotificationService NotificationService
	ProfileService      ProfileService
	BlobService         BlobService
	ChangeService       ChangeService
}

func NewServices(storages *store.Storages, ids store.IDGenerator, cfg config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	policyService := NewPolicyValidationService(nil).Wrap(NewPolicyService(storages.PolicyStorage, logger))

	return &Services{
		AuthService:         NewAuthService(cfg.App, logger),
		AppInfoService:      appInfo,
		PolicyService:       policyService,
		SharingService:      NewSharingService(storages.PolicyStorage, storages.SharingStorage, storages.ProfileRepository, ids, logger),
		NotificationService: NewNotificationService(storages.NotificationStorage, logger),
		ProfileService:      NewProfileService(storages.ProfileRepository, logger),
		BlobService:         NewBlobService(storages.BlobStore, logger),
		ChangeService:       NewChangeService(storages.ChangeFeed, logger),
	}, nil
}
