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

func newProfileService(t *testing.T) (*mock.MockProfileRepository, ProfileService) {
	repo := mock.NewMockProfileRepository(gomock.NewController(t))
	return repo, NewProfileService(repo, logger.Nop())
}

// ── GetProfile ──

func TestProfileService_GetProfile_DefaultWhenMissing(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, asha.UserID).Return(models.Profile{}, store.ErrProfileNotFound)

	got, err := svc.GetProfile(ctx, asha)

	require.NoError(t, err)
	assert.Equal(t, models.Profile{ID: asha.UserID, Email: asha.Email, Role: models.RoleAgent}, got)
}

func TestProfileService_GetProfile_NoIdentity(t *testing.T) {
	_, svc := newProfileService(t)

	_, err := svc.GetProfile(context.Background(), models.Identity{})

	assert.ErrorIs(t, err, ErrNoIdentity)
}

// ── UpdateProfile ──

func TestProfileService_UpdateProfile_KeepsRole(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, asha.UserID).Return(models.Profile{ID: asha.UserID, Email: "old@example.com", Role: models.RoleAdmin}, nil)
	repo.EXPECT().
		Upsert(ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, p models.Profile) (models.Profile, error) {
			assert.Equal(t, models.RoleAdmin, p.Role)
			assert.Equal(t, asha.Email, p.Email)
			assert.Equal(t, "Asha", p.FirstName)
			assert.Equal(t, "AG-7", p.AgentCode)
			return p, nil
		})

	got, err := svc.UpdateProfile(ctx, asha, models.ProfileUpdate{FirstName: "Asha", LastName: "Rao", AgentCode: "AG-7"})

	require.NoError(t, err)
	assert.Equal(t, "Asha Rao", got.DisplayName())
}

// ── admin operations ──

func TestProfileService_ListProfiles_RequiresAdmin(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, ravi.UserID).Return(models.Profile{ID: ravi.UserID, Role: models.RoleAgent}, nil)

	_, err := svc.ListProfiles(ctx, ravi)

	assert.ErrorIs(t, err, ErrAdminRequired)
}

func TestProfileService_ListProfiles_Admin(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	all := []models.Profile{{ID: asha.UserID, Role: models.RoleAdmin}, {ID: ravi.UserID, Role: models.RoleAgent}}
	repo.EXPECT().Get(ctx, asha.UserID).Return(all[0], nil)
	repo.EXPECT().List(ctx).Return(all, nil)

	got, err := svc.ListProfiles(ctx, asha)

	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestProfileService_UpdateRole(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, asha.UserID).Return(models.Profile{ID: asha.UserID, Role: models.RoleAdmin}, nil)
	repo.EXPECT().UpdateRole(ctx, ravi.UserID, models.RoleAdmin).Return(models.Profile{ID: ravi.UserID, Role: models.RoleAdmin}, nil)

	got, err := svc.UpdateRole(ctx, asha, ravi.UserID, models.RoleAdmin)

	require.NoError(t, err)
	assert.True(t, got.IsAdmin())
}

func TestProfileService_UpdateRole_InvalidRole(t *testing.T) {
	_, svc := newProfileService(t)

	_, err := svc.UpdateRole(context.Background(), asha, ravi.UserID, models.Role("owner"))

	assert.ErrorIs(t, err, ErrValidation)
}

func TestProfileService_UpdateRole_UnknownUser(t *testing.T) {
	repo, svc := newProfileService(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, asha.UserID).Return(models.Profile{ID: asha.UserID, Role: models.RoleAdmin}, nil)
	repo.EXPECT().UpdateRole(ctx, "ghost", models.RoleAgent).Return(models.Profile{}, store.ErrProfileNotFound)

	_, err := svc.UpdateRole(ctx, asha, "ghost", models.RoleAgent)

	assert.ErrorIs(t, err, store.ErrProfileNotFound)
}
