package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
)

type policyService struct {
	policyStorage store.PolicyStorage

	logger *logger.Logger
}

// NewPolicyService returns the persistence service. Requests are expected
// to be validated already, see NewPolicyValidationService.
func NewPolicyService(policyStorage store.PolicyStorage, logger *logger.Logger) PolicyService {
	return &policyService{policyStorage: policyStorage, logger: logger}
}

func (p *policyService) Save(ctx context.Context, identity models.Identity, write models.PolicyWrite) (models.PolicyRecord, error) {
	if identity.IsZero() {
		return models.PolicyRecord{}, ErrNoIdentity
	}

	record, err := p.policyStorage.Save(ctx, identity.UserID, write)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "policyService.Save").
			Stringer("ref", write.Ref).
			Str("status", string(write.Status)).
			Msg("error saving policy")
		return models.PolicyRecord{}, fmt.Errorf("error saving policy: %w", err)
	}

	return record, nil
}

func (p *policyService) Get(ctx context.Context, identity models.Identity, id string) (models.PolicyRecord, error) {
	if identity.IsZero() {
		return models.PolicyRecord{}, ErrNoIdentity
	}

	record, err := p.policyStorage.Get(ctx, id, identity)
	if err != nil {
		return models.PolicyRecord{}, fmt.Errorf("error getting policy: %w", err)
	}
	return record, nil
}

func (p *policyService) List(ctx context.Context, identity models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error) {
	if identity.IsZero() {
		return nil, ErrNoIdentity
	}

	records, err := p.policyStorage.List(ctx, identity, filter)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "policyService.List").Any("filter", filter).Msg("error listing policies")
		return nil, fmt.Errorf("error listing policies: %w", err)
	}
	return records, nil
}

func (p *policyService) Counts(ctx context.Context, identity models.Identity) (models.PolicyCounts, error) {
	if identity.IsZero() {
		return models.PolicyCounts{}, ErrNoIdentity
	}

	counts, err := p.policyStorage.Counts(ctx, identity)
	if err != nil {
		return models.PolicyCounts{}, fmt.Errorf("error counting policies: %w", err)
	}
	return counts, nil
}

// Delete removes an owned policy. Grants and notifications that point at it
// are left in place.
func (p *policyService) Delete(ctx context.Context, identity models.Identity, id string) error {
	if identity.IsZero() {
		return ErrNoIdentity
	}

	if err := p.policyStorage.Delete(ctx, id, identity.UserID); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "policyService.Delete").Str("id", id).Msg("error deleting policy")
		return fmt.Errorf("error deleting policy: %w", err)
	}
	return nil
}
