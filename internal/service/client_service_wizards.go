package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
)

type clientWizardService struct {
	serverAdapter adapter.ServerAdapter
	session       ClientSessionService
	deps          WizardDeps
}

// NewClientWizardService opens wizard sessions sharing deps. deps.Writer
// defaults to serverAdapter.
func NewClientWizardService(serverAdapter adapter.ServerAdapter, session ClientSessionService, deps WizardDeps) ClientWizardService {
	if deps.Writer == nil {
		deps.Writer = serverAdapter
	}
	return &clientWizardService{serverAdapter: serverAdapter, session: session, deps: deps}
}

func (s *clientWizardService) New() *Wizard {
	return NewWizard(s.deps, nil, models.FirstStep, false)
}

// Open decides read-only from the viewer's access at open time: a record the
// server returned to someone other than its owner is visible through a grant.
func (s *clientWizardService) Open(ctx context.Context, id string, startStep models.Step, readOnly bool) (*Wizard, error) {
	identity, ok := s.session.Identity()
	if !ok {
		return nil, ErrNotSignedIn
	}

	record, err := s.serverAdapter.GetPolicy(ctx, id)
	if err != nil {
		return nil, mapAdapterError(err)
	}

	access := models.DecideAccess(record, identity, record.OwnerID != identity.UserID)
	if access == models.AccessNone {
		return nil, fmt.Errorf("%w: %s", store.ErrPolicyNotFound, id)
	}

	w := NewWizard(s.deps, &record, startStep, access.ReadOnly(readOnly))
	if access == models.AccessOwner {
		w.MarkOwned()
	}
	return w, nil
}

func (s *clientWizardService) Resume(ctx context.Context, key string) (*Wizard, error) {
	if s.deps.Snapshots == nil {
		return nil, ErrWizardNotSaved
	}

	snapshot, err := s.deps.Snapshots.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	return RestoreWizard(s.deps, snapshot), nil
}

func (s *clientWizardService) Discard(ctx context.Context, key string) error {
	if s.deps.Snapshots == nil {
		return nil
	}
	return s.deps.Snapshots.Delete(ctx, key)
}
