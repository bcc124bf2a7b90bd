package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

type snapshotRepository struct {
	*DB
	logger *logger.Logger
}

// NewSnapshotRepository constructs a [SnapshotRepository] on the client's
// sqlite database.
func NewSnapshotRepository(db *DB, logger *logger.Logger) SnapshotRepository {
	return &snapshotRepository{
		DB:     db,
		logger: logger,
	}
}

// Save replaces the snapshot stored under the snapshot's key. Local
// attachment payloads are kept in the form JSON.
func (r *snapshotRepository) Save(ctx context.Context, snapshot models.WizardSnapshot) error {
	log := logger.FromContext(ctx).With().Str("func", "snapshotRepository.Save").Logger()

	form, err := json.Marshal(snapshot.FormData)
	if err != nil {
		log.Err(err).Msg("failed to encode form data")
		return fmt.Errorf("%w: %w", ErrEncodingFormData, err)
	}

	var policyID sql.NullString
	if id, ok := snapshot.Ref.ID(); ok {
		policyID = sql.NullString{String: id, Valid: true}
	}

	updatedAt := snapshot.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	_, err = r.DB.ExecContext(ctx, saveWizardSnapshot,
		models.SnapshotKey(snapshot.Ref),
		policyID,
		string(snapshot.Status),
		int(snapshot.Step),
		snapshot.ReadOnly,
		string(form),
		updatedAt,
	)
	if err != nil {
		log.Err(err).Msg("failed to save snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *snapshotRepository) Get(ctx context.Context, key string) (models.WizardSnapshot, error) {
	log := logger.FromContext(ctx).With().Str("func", "snapshotRepository.Get").Str("key", key).Logger()

	var (
		snapshot models.WizardSnapshot
		policyID sql.NullString
		status   string
		step     int
		form     string
	)

	err := r.DB.QueryRowContext(ctx, selectWizardSnapshot, key).
		Scan(&policyID, &status, &step, &snapshot.ReadOnly, &form, &snapshot.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.WizardSnapshot{}, ErrSnapshotNotFound
	}
	if err != nil {
		log.Err(err).Msg("failed to read snapshot")
		return models.WizardSnapshot{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	snapshot.FormData = models.NewFormData()
	if err = json.Unmarshal([]byte(form), &snapshot.FormData); err != nil {
		log.Err(err).Msg("failed to decode form data")
		return models.WizardSnapshot{}, fmt.Errorf("%w: %w", ErrEncodingFormData, err)
	}

	if policyID.Valid && policyID.String != "" {
		snapshot.Ref = models.Persisted(policyID.String)
	}
	snapshot.Status = models.PolicyStatus(status)
	snapshot.Step = models.Step(step)

	return snapshot, nil
}

func (r *snapshotRepository) Delete(ctx context.Context, key string) error {
	if _, err := r.DB.ExecContext(ctx, deleteWizardSnapshot, key); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "snapshotRepository.Delete").Str("key", key).Msg("failed to delete snapshot")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
