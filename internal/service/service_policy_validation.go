package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/validators"
	"github.com/MKhiriev/go-policy-desk/models"
)

// PolicyValidationService rejects malformed writes and filters before they
// reach the wrapped PolicyService.
type PolicyValidationService struct {
	inner     PolicyService
	validator validators.Validator
}

// NewPolicyValidationService returns a wrapper whose validator uses now as
// its clock; nil means time.Now.
func NewPolicyValidationService(now func() time.Time) PolicyServiceWrapper {
	return &PolicyValidationService{
		validator: validators.NewPolicyValidator(now),
	}
}

func (v *PolicyValidationService) Save(ctx context.Context, identity models.Identity, write models.PolicyWrite) (models.PolicyRecord, error) {
	if err := v.validator.Validate(ctx, write); err != nil {
		return models.PolicyRecord{}, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.Save(ctx, identity, write)
}

func (v *PolicyValidationService) Get(ctx context.Context, identity models.Identity, id string) (models.PolicyRecord, error) {
	return v.inner.Get(ctx, identity, id)
}

func (v *PolicyValidationService) List(ctx context.Context, identity models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error) {
	if err := v.validator.Validate(ctx, filter); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return v.inner.List(ctx, identity, filter)
}

func (v *PolicyValidationService) Counts(ctx context.Context, identity models.Identity) (models.PolicyCounts, error) {
	return v.inner.Counts(ctx, identity)
}

func (v *PolicyValidationService) Delete(ctx context.Context, identity models.Identity, id string) error {
	return v.inner.Delete(ctx, identity, id)
}

func (v *PolicyValidationService) Wrap(wrapped PolicyService) PolicyService {
	v.inner = wrapped
	return v
}
