// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

// sharingStorage is the default implementation of [SharingStorage]. Every
// command answers with the ledger as stored after the command.
type sharingStorage struct {
	repository ShareRepository
	feed       ChangeFeed
	logger     *logger.Logger
}

// NewSharingStorage constructs a [SharingStorage].
func NewSharingStorage(repository ShareRepository, feed ChangeFeed, logger *logger.Logger) SharingStorage {
	logger.Debug().Msg("creating sharing storage")
	return &sharingStorage{
		repository: repository,
		feed:       feed,
		logger:     logger,
	}
}

func (s *sharingStorage) Grant(ctx context.Context, grant models.ShareGrant, notification models.Notification) (models.ShareLedger, error) {
	if err := s.repository.Grant(ctx, grant, notification); err != nil {
		return models.ShareLedger{}, err
	}

	now := time.Now().UTC()
	publish(ctx, s.feed, models.ChangeEvent{Table: models.TablePolicyShares, Op: models.OpInsert, RecordID: grant.PolicyID, At: now})
	publish(ctx, s.feed, models.ChangeEvent{Table: models.TableNotifications, Op: models.OpInsert, RecordID: notification.ID, At: now})

	return s.Ledger(ctx, grant.PolicyID)
}

// Revoke deletes a grant if present. Revoking an absent grant is not an
// error and publishes nothing.
func (s *sharingStorage) Revoke(ctx context.Context, policyID, email string) (models.ShareLedger, error) {
	removed, err := s.repository.Revoke(ctx, policyID, email)
	if err != nil {
		return models.ShareLedger{}, err
	}

	if removed {
		publish(ctx, s.feed, models.ChangeEvent{
			Table:    models.TablePolicyShares,
			Op:       models.OpDelete,
			RecordID: policyID,
			At:       time.Now().UTC(),
		})
	}

	return s.Ledger(ctx, policyID)
}

func (s *sharingStorage) Ledger(ctx context.Context, policyID string) (models.ShareLedger, error) {
	grants, err := s.repository.List(ctx, policyID)
	if err != nil {
		return models.ShareLedger{}, err
	}

	return models.ShareLedger{PolicyID: policyID, Grants: grants}, nil
}

func (s *sharingStorage) HasGrant(ctx context.Context, policyID, email string) (bool, error) {
	return s.repository.Exists(ctx, policyID, email)
}
