package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
)

type notificationService struct {
	notificationStorage store.NotificationStorage

	logger *logger.Logger
}

func NewNotificationService(notificationStorage store.NotificationStorage, logger *logger.Logger) NotificationService {
	return &notificationService{notificationStorage: notificationStorage, logger: logger}
}

func (n *notificationService) List(ctx context.Context, viewer models.Identity) ([]models.Notification, error) {
	if viewer.IsZero() {
		return nil, ErrNoIdentity
	}

	notifications, err := n.notificationStorage.List(ctx, viewer.Email)
	if err != nil {
		return nil, fmt.Errorf("error listing notifications: %w", err)
	}
	return notifications, nil
}

// UnreadCount is computed by the store on every call; nothing is cached.
func (n *notificationService) UnreadCount(ctx context.Context, viewer models.Identity) (int, error) {
	if viewer.IsZero() {
		return 0, ErrNoIdentity
	}

	count, err := n.notificationStorage.UnreadCount(ctx, viewer.Email)
	if err != nil {
		return 0, fmt.Errorf("error counting unread notifications: %w", err)
	}
	return count, nil
}

// MarkRead flips the read flag of a notification addressed to viewer. It is
// idempotent.
func (n *notificationService) MarkRead(ctx context.Context, viewer models.Identity, id string) (models.Notification, error) {
	if viewer.IsZero() {
		return models.Notification{}, ErrNoIdentity
	}

	notification, err := n.notificationStorage.MarkRead(ctx, id, viewer.Email)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationService.MarkRead").Str("id", id).Msg("error marking notification read")
		return models.Notification{}, fmt.Errorf("error marking notification read: %w", err)
	}
	return notification, nil
}
