package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

// policyRepository is the Postgres implementation of [PolicyRepository].
// Row metadata lives in columns; the form itself is one JSONB column.
type policyRepository struct {
	*DB
	logger *logger.Logger
}

// NewPolicyRepository constructs a [PolicyRepository] on db.
func NewPolicyRepository(db *DB, logger *logger.Logger) PolicyRepository {
	logger.Debug().Msg("creating policy repository")
	return &policyRepository{
		DB:     db,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPolicy(row rowScanner) (models.PolicyRecord, error) {
	var (
		record   models.PolicyRecord
		status   string
		formData []byte
	)

	if err := row.Scan(
		&record.ID,
		&record.OwnerID,
		&status,
		&formData,
		&record.CreatedAt,
		&record.LastModified,
		&record.SharedCount,
	); err != nil {
		return models.PolicyRecord{}, err
	}
	record.Status = models.PolicyStatus(status)

	form := models.NewFormData()
	if len(formData) > 0 {
		if err := json.Unmarshal(formData, &form); err != nil {
			return models.PolicyRecord{}, fmt.Errorf("%w: %w", ErrEncodingFormData, err)
		}
	}
	record.FormData = form

	return record, nil
}

// Upsert inserts or updates the row with id in one statement. The update
// branch only fires for the same owner, so a foreign id returns no row.
func (r *policyRepository) Upsert(ctx context.Context, id, ownerID string, status models.PolicyStatus, form models.FormData) (models.PolicyRecord, error) {
	log := logger.FromContext(ctx)

	payload, err := json.Marshal(form)
	if err != nil {
		log.Err(err).Str("func", "policyRepository.Upsert").Str("policy_id", id).Msg("failed to encode form data")
		return models.PolicyRecord{}, fmt.Errorf("%w: %w", ErrEncodingFormData, err)
	}

	row := r.DB.QueryRowContext(ctx, upsertPolicy, id, ownerID, string(status), payload)
	record, err := scanPolicy(row)
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		log.Warn().Str("func", "policyRepository.Upsert").Str("policy_id", id).Msg("policy belongs to another owner")
		return models.PolicyRecord{}, ErrPolicyNotFound
	}
	if errors.Is(err, ErrEncodingFormData) {
		return models.PolicyRecord{}, err
	}
	if err != nil {
		log.Err(err).
			Str("func", "policyRepository.Upsert").
			Str("policy_id", id).
			Str("class", r.classify(err)).
			Msg("failed to upsert policy")
		return models.PolicyRecord{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return record, nil
}

// Get returns the record when it is visible to viewer.
func (r *policyRepository) Get(ctx context.Context, id string, viewer models.Identity) (models.PolicyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetPolicyQuery(id, viewer)
	if err != nil {
		log.Err(err).Str("func", "policyRepository.Get").Msg("failed to create query")
		return models.PolicyRecord{}, err
	}

	record, err := scanPolicy(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return models.PolicyRecord{}, ErrPolicyNotFound
	}
	if errors.Is(err, ErrEncodingFormData) {
		log.Err(err).Str("func", "policyRepository.Get").Str("policy_id", id).Msg("stored form data is corrupt")
		return models.PolicyRecord{}, err
	}
	if err != nil {
		log.Err(err).Str("func", "policyRepository.Get").Str("policy_id", id).Msg("failed to get policy")
		return models.PolicyRecord{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return record, nil
}

// List returns the viewer's records newest first.
func (r *policyRepository) List(ctx context.Context, viewer models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListPoliciesQuery(viewer, filter)
	if err != nil {
		log.Err(err).Str("func", "policyRepository.List").Msg("failed to create query")
		return nil, err
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "policyRepository.List").
			Str("user_id", viewer.UserID).
			Msg("failed to execute query for listing policies")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	records := make([]models.PolicyRecord, 0, 16)
	for rows.Next() {
		record, scanErr := scanPolicy(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "policyRepository.List").Msg("failed to scan policy row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		records = append(records, record)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "policyRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return records, nil
}

// Counts returns the dashboard counters of viewer.
func (r *policyRepository) Counts(ctx context.Context, viewer models.Identity) (models.PolicyCounts, error) {
	var counts models.PolicyCounts

	err := r.DB.QueryRowContext(ctx, countPolicies, viewer.UserID, viewer.Email).
		Scan(&counts.Submitted, &counts.Drafts, &counts.Shared)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "policyRepository.Counts").
			Str("user_id", viewer.UserID).
			Msg("failed to count policies")
		return models.PolicyCounts{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return counts, nil
}

// Delete removes an owned record. Grants and notifications are kept.
func (r *policyRepository) Delete(ctx context.Context, id, ownerID string) error {
	log := logger.FromContext(ctx)

	result, err := r.DB.ExecContext(ctx, deletePolicy, id, ownerID)
	if isMalformedID(err) {
		return ErrPolicyNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "policyRepository.Delete").Str("policy_id", id).Msg("failed to delete policy")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrPolicyNotFound
	}

	return nil
}

// OwnerOf returns the owner id of a record regardless of the caller.
func (r *policyRepository) OwnerOf(ctx context.Context, id string) (string, error) {
	var ownerID string

	err := r.DB.QueryRowContext(ctx, selectPolicyOwner, id).Scan(&ownerID)
	if errors.Is(err, sql.ErrNoRows) || isMalformedID(err) {
		return "", ErrPolicyNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "policyRepository.OwnerOf").Str("policy_id", id).Msg("failed to read owner")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return ownerID, nil
}
