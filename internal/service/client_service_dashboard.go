package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/workers"
	"github.com/MKhiriev/go-policy-desk/models"
)

type clientDashboardService struct {
	serverAdapter adapter.ServerAdapter
	coordinator   *Coordinator

	logger *logger.Logger
}

func NewClientDashboardService(serverAdapter adapter.ServerAdapter, coordinator *Coordinator, logger *logger.Logger) ClientDashboardService {
	return &clientDashboardService{serverAdapter: serverAdapter, coordinator: coordinator, logger: logger}
}

// Load fetches the listing, the counters and the notifications in parallel.
func (d *clientDashboardService) Load(ctx context.Context, view models.PolicyFilter) (models.Dashboard, error) {
	dashboard := models.Dashboard{View: view}

	group := workers.New(0,
		workers.WorkerFunc(func() (err error) {
			dashboard.Policies, err = d.serverAdapter.ListPolicies(ctx, view)
			return mapAdapterError(err)
		}),
		workers.WorkerFunc(func() (err error) {
			dashboard.Counts, err = d.serverAdapter.PolicyCounts(ctx)
			return mapAdapterError(err)
		}),
		workers.WorkerFunc(func() error {
			list, err := d.serverAdapter.ListNotifications(ctx)
			if err != nil {
				return mapAdapterError(err)
			}
			dashboard.Notifications, dashboard.Unread = list.Notifications, list.Unread
			return nil
		}),
	)

	if err := group.Run(); err != nil {
		d.logger.Err(err).Str("func", "clientDashboardService.Load").Any("view", view).Msg("error loading dashboard")
		return models.Dashboard{}, err
	}
	return dashboard, nil
}

// Delete removes an owned policy and asks the dashboard to refetch.
func (d *clientDashboardService) Delete(ctx context.Context, id string) error {
	if err := d.serverAdapter.DeletePolicy(ctx, id); err != nil {
		return mapAdapterError(err)
	}

	d.coordinator.PublishDashboardRefresh()
	return nil
}
