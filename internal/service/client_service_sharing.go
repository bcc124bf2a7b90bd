package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

type clientSharingService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientSharingService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientSharingService {
	return &clientSharingService{serverAdapter: serverAdapter, logger: logger}
}

func (s *clientSharingService) Ledger(ctx context.Context, policyID string) (models.ShareLedger, error) {
	ledger, err := s.serverAdapter.ListGrants(ctx, policyID)
	if err != nil {
		return models.ShareLedger{}, mapAdapterError(err)
	}
	return ledger, nil
}

func (s *clientSharingService) Grant(ctx context.Context, policyID, email string) (models.ShareLedger, error) {
	email = models.NormalizeEmail(email)

	ledger, err := s.serverAdapter.GrantAccess(ctx, policyID, email)
	if err != nil {
		s.logger.Err(err).Str("func", "clientSharingService.Grant").Str("policy_id", policyID).Msg("error sharing policy")
		return models.ShareLedger{}, mapAdapterError(err)
	}
	return ledger, nil
}

func (s *clientSharingService) Revoke(ctx context.Context, policyID, email string) (models.ShareLedger, error) {
	ledger, err := s.serverAdapter.RevokeAccess(ctx, policyID, models.NormalizeEmail(email))
	if err != nil {
		s.logger.Err(err).Str("func", "clientSharingService.Revoke").Str("policy_id", policyID).Msg("error revoking access")
		return models.ShareLedger{}, mapAdapterError(err)
	}
	return ledger, nil
}
