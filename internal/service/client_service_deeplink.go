package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

type deepLinkResolver struct {
	serverAdapter adapter.ServerAdapter
	wizards       ClientWizardService

	logger *logger.Logger
}

func NewDeepLinkResolver(serverAdapter adapter.ServerAdapter, wizards ClientWizardService, logger *logger.Logger) DeepLinkResolver {
	return &deepLinkResolver{serverAdapter: serverAdapter, wizards: wizards, logger: logger}
}

func (d *deepLinkResolver) OpenFromNotification(ctx context.Context, n models.Notification) (*Wizard, error) {
	return d.Open(ctx, models.OpenPolicyRequest{PolicyID: n.PolicyID, NotificationID: n.ID})
}

// Open marks the notification read, if any, and opens the policy read-only
// at the summary. A failed read flip does not block opening.
func (d *deepLinkResolver) Open(ctx context.Context, req models.OpenPolicyRequest) (*Wizard, error) {
	if req.NotificationID != "" {
		if _, err := d.serverAdapter.MarkNotificationRead(ctx, req.NotificationID); err != nil {
			d.logger.Warn().Err(err).
				Str("func", "deepLinkResolver.Open").
				Str("notification_id", req.NotificationID).
				Msg("error marking notification read")
		}
	}

	return d.wizards.Open(ctx, req.PolicyID, models.StepSummary, true)
}
