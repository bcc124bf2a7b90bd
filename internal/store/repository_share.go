package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/jmoiron/sqlx"
)

// shareRepository is the Postgres implementation of [ShareRepository].
type shareRepository struct {
	*DB
	logger *logger.Logger
}

// NewShareRepository constructs a [ShareRepository] on db.
func NewShareRepository(db *DB, logger *logger.Logger) ShareRepository {
	logger.Debug().Msg("creating share repository")
	return &shareRepository{
		DB:     db,
		logger: logger,
	}
}

// Grant writes the grant and the recipient's notification atomically. A
// second grant for the same (policy, email) pair fails with
// [ErrDuplicateGrant] and leaves no notification behind.
func (r *shareRepository) Grant(ctx context.Context, grant models.ShareGrant, notification models.Notification) error {
	log := logger.FromContext(ctx).With().
		Str("func", "shareRepository.Grant").
		Str("policy_id", grant.PolicyID).
		Logger()

	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err = tx.NamedExecContext(ctx, insertShareGrant, grant); err != nil {
		if isUniqueViolation(err) {
			log.Debug().Str("recipient", grant.RecipientEmail).Msg("grant already exists")
			return ErrDuplicateGrant
		}
		log.Err(err).Str("class", r.classify(err)).Msg("failed to insert grant")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if _, err = tx.NamedExecContext(ctx, insertNotification, notification); err != nil {
		log.Err(err).Str("class", r.classify(err)).Msg("failed to insert notification")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// Revoke deletes the grant if present.
func (r *shareRepository) Revoke(ctx context.Context, policyID, email string) (bool, error) {
	result, err := r.DB.ExecContext(ctx, deleteShareGrant, policyID, email)
	if isMalformedID(err) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.Revoke").
			Str("policy_id", policyID).
			Msg("failed to delete grant")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

// List returns the grants of a policy sorted by recipient email.
func (r *shareRepository) List(ctx context.Context, policyID string) ([]models.ShareGrant, error) {
	grants := make([]models.ShareGrant, 0)

	err := sqlx.SelectContext(ctx, r.DB, &grants, selectShareGrants, policyID)
	if isMalformedID(err) {
		return grants, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.List").
			Str("policy_id", policyID).
			Msg("failed to list grants")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return grants, nil
}

// Exists reports whether email holds a grant for the policy.
func (r *shareRepository) Exists(ctx context.Context, policyID, email string) (bool, error) {
	var exists bool

	err := sqlx.GetContext(ctx, r.DB, &exists, existsShareGrant, policyID, email)
	if isMalformedID(err) {
		return false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "shareRepository.Exists").
			Str("policy_id", policyID).
			Msg("failed to check grant")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}
