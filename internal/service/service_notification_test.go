package service

import (
	"context"
	"testing"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/mock"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func newNotificationService(t *testing.T) (*mock.MockNotificationStorage, NotificationService) {
	storage := mock.NewMockNotificationStorage(gomock.NewController(t))
	return storage, NewNotificationService(storage, logger.Nop())
}

func TestNotificationService_ListByEmail(t *testing.T) {
	storage, svc := newNotificationService(t)
	ctx := context.Background()

	storage.EXPECT().List(ctx, ravi.Email).Return([]models.Notification{{ID: "n1", RecipientEmail: ravi.Email}}, nil)

	got, err := svc.List(ctx, ravi)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "n1", got[0].ID)
}

func TestNotificationService_UnreadCount(t *testing.T) {
	storage, svc := newNotificationService(t)
	ctx := context.Background()

	storage.EXPECT().UnreadCount(ctx, ravi.Email).Return(3, nil)

	got, err := svc.UnreadCount(ctx, ravi)

	require.NoError(t, err)
	assert.Equal(t, 3, got)
}

func TestNotificationService_MarkRead_Idempotent(t *testing.T) {
	storage, svc := newNotificationService(t)
	ctx := context.Background()

	read := models.Notification{ID: "n1", RecipientEmail: ravi.Email, IsRead: true}
	storage.EXPECT().MarkRead(ctx, "n1", ravi.Email).Return(read, nil).Times(2)

	first, err := svc.MarkRead(ctx, ravi, "n1")
	require.NoError(t, err)
	second, err := svc.MarkRead(ctx, ravi, "n1")
	require.NoError(t, err)

	assert.True(t, first.IsRead)
	assert.Equal(t, first, second)
}

func TestNotificationService_MarkRead_ForeignNotification(t *testing.T) {
	storage, svc := newNotificationService(t)
	ctx := context.Background()

	storage.EXPECT().MarkRead(ctx, "n1", asha.Email).Return(models.Notification{}, store.ErrNotificationNotFound)

	_, err := svc.MarkRead(ctx, asha, "n1")

	assert.ErrorIs(t, err, store.ErrNotificationNotFound)
}

func TestNotificationService_NoIdentity(t *testing.T) {
	_, svc := newNotificationService(t)
	ctx := context.Background()

	_, err := svc.List(ctx, models.Identity{})
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.UnreadCount(ctx, models.Identity{})
	assert.ErrorIs(t, err, ErrNoIdentity)

	_, err = svc.MarkRead(ctx, models.Identity{}, "n1")
	assert.ErrorIs(t, err, ErrNoIdentity)
}
