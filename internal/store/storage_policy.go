// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

// IDGenerator produces identifiers for records the store has never seen.
type IDGenerator interface {
	Generate() string
}

// policyStorage is the default implementation of [PolicyStorage].
//
// It turns a [models.PolicyWrite] into a single repository upsert and
// announces every successful write on the change feed.
type policyStorage struct {
	repository PolicyRepository
	feed       ChangeFeed
	ids        IDGenerator
	logger     *logger.Logger
}

// NewPolicyStorage constructs a [PolicyStorage].
func NewPolicyStorage(repository PolicyRepository, feed ChangeFeed, ids IDGenerator, logger *logger.Logger) PolicyStorage {
	logger.Debug().Msg("creating policy storage")
	return &policyStorage{
		repository: repository,
		feed:       feed,
		ids:        ids,
		logger:     logger,
	}
}

// Save inserts a NotPersisted write under a fresh id, or upserts a Persisted
// one by its id. The returned record is what the database holds afterwards.
func (s *policyStorage) Save(ctx context.Context, ownerID string, write models.PolicyWrite) (models.PolicyRecord, error) {
	id, persisted := write.Ref.ID()
	op := models.OpUpdate
	if !persisted {
		id = s.ids.Generate()
		op = models.OpInsert
	}

	record, err := s.repository.Upsert(ctx, id, ownerID, write.Status, write.FormData)
	if err != nil {
		return models.PolicyRecord{}, err
	}

	s.announce(ctx, models.TablePolicies, op, record.ID)
	return record, nil
}

func (s *policyStorage) Get(ctx context.Context, id string, viewer models.Identity) (models.PolicyRecord, error) {
	return s.repository.Get(ctx, id, viewer)
}

func (s *policyStorage) List(ctx context.Context, viewer models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error) {
	return s.repository.List(ctx, viewer, filter)
}

func (s *policyStorage) Counts(ctx context.Context, viewer models.Identity) (models.PolicyCounts, error) {
	return s.repository.Counts(ctx, viewer)
}

// Delete removes the record. Grants and notifications pointing at it stay.
func (s *policyStorage) Delete(ctx context.Context, id, ownerID string) error {
	if err := s.repository.Delete(ctx, id, ownerID); err != nil {
		return err
	}

	s.announce(ctx, models.TablePolicies, models.OpDelete, id)
	return nil
}

func (s *policyStorage) OwnerOf(ctx context.Context, id string) (string, error) {
	return s.repository.OwnerOf(ctx, id)
}

// announce publishes a change event. The write is already committed, so a
// feed failure is logged and swallowed.
func (s *policyStorage) announce(ctx context.Context, table models.Table, op models.ChangeOp, recordID string) {
	publish(ctx, s.feed, models.ChangeEvent{Table: table, Op: op, RecordID: recordID, At: time.Now().UTC()})
}

func publish(ctx context.Context, feed ChangeFeed, event models.ChangeEvent) {
	if feed == nil {
		return
	}
	if err := feed.Publish(ctx, event); err != nil {
		logger.FromContext(ctx).Warn().Err(err).
			Str("table", string(event.Table)).
			Str("record_id", event.RecordID).
			Msg("change event was not published")
	}
}
