package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

type clientProfileService struct {
	serverAdapter adapter.ServerAdapter
	session       ClientSessionService
	coordinator   *Coordinator

	logger *logger.Logger
}

func NewClientProfileService(serverAdapter adapter.ServerAdapter, session ClientSessionService, coordinator *Coordinator, logger *logger.Logger) ClientProfileService {
	return &clientProfileService{
		serverAdapter: serverAdapter,
		session:       session,
		coordinator:   coordinator,
		logger:        logger,
	}
}

func (p *clientProfileService) Load(ctx context.Context) (models.Profile, error) {
	profile, err := p.serverAdapter.GetProfile(ctx)
	if err != nil {
		return models.Profile{}, mapAdapterError(err)
	}

	p.coordinator.PublishProfileUpdated(profile)
	return profile, nil
}

func (p *clientProfileService) Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	profile, err := p.serverAdapter.UpdateProfile(ctx, update)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.Update").Msg("error updating profile")
		return models.Profile{}, mapAdapterError(err)
	}

	p.coordinator.PublishProfileUpdated(profile)
	return profile, nil
}

func (p *clientProfileService) List(ctx context.Context) ([]models.Profile, error) {
	profiles, err := p.serverAdapter.ListProfiles(ctx)
	if err != nil {
		return nil, mapAdapterError(err)
	}
	return profiles, nil
}

// UpdateRole returns the profile as the server stored it. The signed-in
// agent's own change is announced like any other profile update.
func (p *clientProfileService) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	profile, err := p.serverAdapter.UpdateRole(ctx, userID, role)
	if err != nil {
		p.logger.Err(err).Str("func", "clientProfileService.UpdateRole").Str("user_id", userID).Msg("error updating role")
		return models.Profile{}, mapAdapterError(err)
	}

	if identity, ok := p.session.Identity(); ok && identity.UserID == profile.ID {
		p.coordinator.PublishProfileUpdated(profile)
	}
	return profile, nil
}
