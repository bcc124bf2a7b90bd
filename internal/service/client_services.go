package service

import (
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
)

type ClientServices struct {
	Coordinator *Coordinator

	SessionService   ClientSessionService
	ProfileService   ClientProfileService
	SharingService   ClientSharingService
	DashboardService ClientDashboardService
	WizardService    ClientWizardService
	DeepLinks        DeepLinkResolver
	Realtime         RealtimeBridge
}

func NewClientServices(localStore *store.ClientStorages, serverAdapter adapter.ServerAdapter, cfg config.ClientWorkers, logger *logger.Logger) *ClientServices {
	coordinator := NewCoordinator()
	sessionSvc := NewClientSessionService(localStore.Sessions, serverAdapter, logger)

	wizardSvc := NewClientWizardService(serverAdapter, sessionSvc, WizardDeps{
		Writer:     serverAdapter,
		Reconciler: NewAttachmentReconciler(serverAdapter, cfg.UploadConcurrency, time.Now, logger),
		Snapshots:  localStore.Snapshots,
		Now:        time.Now,
		Logger:     logger,
	})

	return &ClientServices{
		Coordinator:      coordinator,
		SessionService:   sessionSvc,
		ProfileService:   NewClientProfileService(serverAdapter, sessionSvc, coordinator, logger),
		SharingService:   NewClientSharingService(serverAdapter, logger),
		DashboardService: NewClientDashboardService(serverAdapter, coordinator, logger),
		WizardService:    wizardSvc,
		DeepLinks:        NewDeepLinkResolver(serverAdapter, wizardSvc, logger),
		Realtime:         NewRealtimeBridge(serverAdapter, cfg.RefreshDebounce, logger),
	}
}
