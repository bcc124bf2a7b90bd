package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

type notificationStorage struct {
	repository NotificationRepository
	feed       ChangeFeed
	logger     *logger.Logger
}

// NewNotificationStorage constructs a [NotificationStorage].
func NewNotificationStorage(repository NotificationRepository, feed ChangeFeed, logger *logger.Logger) NotificationStorage {
	logger.Debug().Msg("creating notification storage")
	return &notificationStorage{
		repository: repository,
		feed:       feed,
		logger:     logger,
	}
}

func (s *notificationStorage) List(ctx context.Context, email string) ([]models.Notification, error) {
	return s.repository.List(ctx, email)
}

func (s *notificationStorage) UnreadCount(ctx context.Context, email string) (int, error) {
	return s.repository.UnreadCount(ctx, email)
}

// MarkRead flips the read flag and announces the update so other sessions
// of the recipient refresh their badge.
func (s *notificationStorage) MarkRead(ctx context.Context, id, email string) (models.Notification, error) {
	notification, err := s.repository.MarkRead(ctx, id, email)
	if err != nil {
		return models.Notification{}, err
	}

	publish(ctx, s.feed, models.ChangeEvent{
		Table:    models.TableNotifications,
		Op:       models.OpUpdate,
		RecordID: notification.ID,
		At:       time.Now().UTC(),
	})
	return notification, nil
}
