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

const shareMessageSuffix = " shared a policy application with you"

type sharingService struct {
	policyStorage  store.PolicyStorage
	sharingStorage store.SharingStorage
	profiles       store.ProfileRepository
	ids            store.IDGenerator
	validator      validators.Validator

	logger *logger.Logger
}

func NewSharingService(
	policyStorage store.PolicyStorage,
	sharingStorage store.SharingStorage,
	profiles store.ProfileRepository,
	ids store.IDGenerator,
	logger *logger.Logger,
) SharingService {
	return &sharingService{
		policyStorage:  policyStorage,
		sharingStorage: sharingStorage,
		profiles:       profiles,
		ids:            ids,
		validator:      validators.NewPolicyValidator(nil),
		logger:         logger,
	}
}

// Grant shares policyID read-only with email and notifies the recipient.
// The grant and its notification are stored together or not at all.
func (s *sharingService) Grant(ctx context.Context, actor models.Identity, policyID, email string) (models.ShareLedger, error) {
	log := logger.FromContext(ctx)

	email = models.NormalizeEmail(email)
	if err := s.validator.Validate(ctx, models.ShareRequest{Email: email}); err != nil {
		return models.ShareLedger{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	if email == actor.Email {
		return models.ShareLedger{}, ErrSelfShare
	}
	if err := s.checkOwner(ctx, actor, policyID); err != nil {
		return models.ShareLedger{}, err
	}

	grant := models.ShareGrant{
		PolicyID:       policyID,
		RecipientEmail: email,
		GrantedBy:      actor.UserID,
	}
	notification := models.Notification{
		ID:             s.ids.Generate(),
		RecipientEmail: email,
		Message:        s.sharerName(ctx, actor) + shareMessageSuffix,
		PolicyID:       policyID,
	}

	ledger, err := s.sharingStorage.Grant(ctx, grant, notification)
	if err != nil {
		log.Err(err).
			Str("func", "sharingService.Grant").
			Str("policy_id", policyID).
			Str("email", email).
			Msg("error granting access")
		return models.ShareLedger{}, fmt.Errorf("error granting access: %w", err)
	}

	return ledger, nil
}

// Revoke removes the grant for email. Revoking an absent grant returns the
// unchanged ledger.
func (s *sharingService) Revoke(ctx context.Context, actor models.Identity, policyID, email string) (models.ShareLedger, error) {
	if err := s.checkOwner(ctx, actor, policyID); err != nil {
		return models.ShareLedger{}, err
	}

	ledger, err := s.sharingStorage.Revoke(ctx, policyID, models.NormalizeEmail(email))
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sharingService.Revoke").Str("policy_id", policyID).Msg("error revoking access")
		return models.ShareLedger{}, fmt.Errorf("error revoking access: %w", err)
	}
	return ledger, nil
}

func (s *sharingService) ListGrants(ctx context.Context, actor models.Identity, policyID string) (models.ShareLedger, error) {
	if err := s.checkOwner(ctx, actor, policyID); err != nil {
		return models.ShareLedger{}, err
	}

	ledger, err := s.sharingStorage.Ledger(ctx, policyID)
	if err != nil {
		return models.ShareLedger{}, fmt.Errorf("error listing grants: %w", err)
	}
	return ledger, nil
}

func (s *sharingService) checkOwner(ctx context.Context, actor models.Identity, policyID string) error {
	if actor.IsZero() {
		return ErrNoIdentity
	}

	ownerID, err := s.policyStorage.OwnerOf(ctx, policyID)
	if err != nil {
		return fmt.Errorf("error checking policy owner: %w", err)
	}
	if ownerID != actor.UserID {
		logger.FromContext(ctx).Warn().
			Str("func", "sharingService.checkOwner").
			Str("policy_id", policyID).
			Str("user_id", actor.UserID).
			Msg("sharing change attempted by non-owner")
		return ErrNotPolicyOwner
	}
	return nil
}

// sharerName is the display name of the stored profile, falling back to the
// default profile when none is stored.
func (s *sharingService) sharerName(ctx context.Context, actor models.Identity) string {
	profile, err := s.profiles.Get(ctx, actor.UserID)
	if err != nil {
		if !errors.Is(err, store.ErrProfileNotFound) {
			logger.FromContext(ctx).Warn().Err(err).Str("func", "sharingService.sharerName").Msg("profile lookup failed")
		}
		profile = models.DefaultProfile(actor)
	}
	return profile.DisplayName()
}
