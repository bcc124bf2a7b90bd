package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/jmoiron/sqlx"
)

// notificationRepository is the Postgres implementation of
// [NotificationRepository]. Notifications are addressed by email.
type notificationRepository struct {
	*DB
	logger *logger.Logger
}

// NewNotificationRepository constructs a [NotificationRepository] on db.
func NewNotificationRepository(db *DB, logger *logger.Logger) NotificationRepository {
	logger.Debug().Msg("creating notification repository")
	return &notificationRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *notificationRepository) List(ctx context.Context, email string) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)

	if err := sqlx.SelectContext(ctx, r.DB, &notifications, selectNotifications, email); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationRepository.List").Msg("failed to list notifications")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return notifications, nil
}

// UnreadCount runs a count query on every call; nothing is cached.
func (r *notificationRepository) UnreadCount(ctx context.Context, email string) (int, error) {
	var count int

	if err := sqlx.GetContext(ctx, r.DB, &count, countUnreadNotifications, email); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "notificationRepository.UnreadCount").Msg("failed to count unread notifications")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

// MarkRead sets is_read and returns the stored row. Marking an already
// read notification succeeds and changes nothing.
func (r *notificationRepository) MarkRead(ctx context.Context, id, email string) (models.Notification, error) {
	var notification models.Notification

	err := sqlx.GetContext(ctx, r.DB, &notification, markNotificationRead, id, email)
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return models.Notification{}, ErrNotificationNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "notificationRepository.MarkRead").
			Str("notification_id", id).
			Msg("failed to mark notification read")
		return models.Notification{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return notification, nil
}
