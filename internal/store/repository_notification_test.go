package store

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var notificationRowColumns = []string{"id", "recipient_email", "message", "policy_id", "is_read", "created_at"}

func newTestNotificationRepo(t *testing.T) (*notificationRepository, sqlmock.Sqlmock) {
	db, mock := newTestDB(t)
	return &notificationRepository{DB: db, logger: logger.Nop()}, mock
}

func TestNotificationList(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	now := time.Now()

	mock.ExpectQuery("SELECT .* FROM notifications WHERE recipient_email = \\$1 ORDER BY created_at DESC").
		WithArgs("ravi@example.com").
		WillReturnRows(sqlmock.NewRows(notificationRowColumns).
			AddRow("n-2", "ravi@example.com", "Asha Rao shared a policy application with you", "p-2", false, now).
			AddRow("n-1", "ravi@example.com", "Asha Rao shared a policy application with you", "p-1", true, now.Add(-time.Hour)))

	list, err := repo.List(context.Background(), "ravi@example.com")
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "n-2", list[0].ID)
	assert.False(t, list[0].IsRead)
	assert.True(t, list[1].IsRead)
}

func TestNotificationUnreadCount(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("SELECT count\\(\\*\\) FROM notifications").
		WithArgs("ravi@example.com").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count, err := repo.UnreadCount(context.Background(), "ravi@example.com")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
}

func TestNotificationMarkRead(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)
	now := time.Now()

	for range 2 {
		mock.ExpectQuery("UPDATE notifications SET is_read = true").
			WithArgs("n-1", "ravi@example.com").
			WillReturnRows(sqlmock.NewRows(notificationRowColumns).
				AddRow("n-1", "ravi@example.com", "msg", "p-1", true, now))
	}

	first, err := repo.MarkRead(context.Background(), "n-1", "ravi@example.com")
	require.NoError(t, err)
	second, err := repo.MarkRead(context.Background(), "n-1", "ravi@example.com")
	require.NoError(t, err)

	assert.True(t, first.IsRead)
	assert.Equal(t, first, second)
}

func TestNotificationMarkRead_OtherRecipient(t *testing.T) {
	repo, mock := newTestNotificationRepo(t)

	mock.ExpectQuery("UPDATE notifications").
		WithArgs("n-1", "eve@example.com").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.MarkRead(context.Background(), "n-1", "eve@example.com")
	assert.ErrorIs(t, err, ErrNotificationNotFound)
}
