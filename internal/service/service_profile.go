package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/validators"
	"github.com/MKhiriev/go-policy-desk/models"
)

type profileService struct {
	profiles  store.ProfileRepository
	validator validators.Validator

	logger *logger.Logger
}

func NewProfileService(profiles store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profiles:  profiles,
		validator: validators.NewPolicyValidator(nil),
		logger:    logger,
	}
}

// GetProfile returns the stored profile, or the default agent profile when
// the identity has none yet.
func (p *profileService) GetProfile(ctx context.Context, identity models.Identity) (models.Profile, error) {
	if identity.IsZero() {
		return models.Profile{}, ErrNoIdentity
	}

	profile, err := p.profiles.Get(ctx, identity.UserID)
	if errors.Is(err, store.ErrProfileNotFound) {
		return models.DefaultProfile(identity), nil
	}
	if err != nil {
		return models.Profile{}, fmt.Errorf("error getting profile: %w", err)
	}
	return profile, nil
}

// UpdateProfile stores the editable fields. The role and email are never
// taken from the request.
func (p *profileService) UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.Profile, error) {
	current, err := p.GetProfile(ctx, identity)
	if err != nil {
		return models.Profile{}, err
	}

	current.Email = identity.Email
	current.FirstName = update.FirstName
	current.LastName = update.LastName
	current.AgentCode = update.AgentCode
	current.DOName = update.DOName
	current.DOCode = update.DOCode

	stored, err := p.profiles.Upsert(ctx, current)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileService.UpdateProfile").Str("user_id", identity.UserID).Msg("error updating profile")
		return models.Profile{}, fmt.Errorf("error updating profile: %w", err)
	}
	return stored, nil
}

func (p *profileService) ListProfiles(ctx context.Context, actor models.Identity) ([]models.Profile, error) {
	if err := p.requireAdmin(ctx, actor); err != nil {
		return nil, err
	}

	profiles, err := p.profiles.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing profiles: %w", err)
	}
	return profiles, nil
}

// UpdateRole changes another agent's role and returns the stored profile.
func (p *profileService) UpdateRole(ctx context.Context, actor models.Identity, userID string, role models.Role) (models.Profile, error) {
	if err := p.validator.Validate(ctx, models.RoleUpdate{Role: role}); err != nil {
		return models.Profile{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if err := p.requireAdmin(ctx, actor); err != nil {
		return models.Profile{}, err
	}

	profile, err := p.profiles.UpdateRole(ctx, userID, role)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "profileService.UpdateRole").
			Str("user_id", userID).
			Str("role", string(role)).
			Msg("error updating role")
		return models.Profile{}, fmt.Errorf("error updating role: %w", err)
	}
	return profile, nil
}

func (p *profileService) requireAdmin(ctx context.Context, actor models.Identity) error {
	profile, err := p.GetProfile(ctx, actor)
	if err != nil {
		return err
	}
	if !profile.IsAdmin() {
		return ErrAdminRequired
	}
	return nil
}
