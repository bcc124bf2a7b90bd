package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/jmoiron/sqlx"
)

type profileRepository struct {
	*DB
	logger *logger.Logger
}

// NewProfileRepository constructs a [ProfileRepository] on db.
func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *profileRepository) Get(ctx context.Context, userID string) (models.Profile, error) {
	var profile models.Profile

	err := sqlx.GetContext(ctx, r.DB, &profile, selectProfile, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.Get").Str("user_id", userID).Msg("failed to get profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

// Upsert stores the editable fields. The role of an existing row is kept;
// it only changes through UpdateRole.
func (r *profileRepository) Upsert(ctx context.Context, profile models.Profile) (models.Profile, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.DB.BindNamed(upsertProfile, profile)
	if err != nil {
		log.Err(err).Str("func", "profileRepository.Upsert").Msg("failed to bind query")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var stored models.Profile
	if err = sqlx.GetContext(ctx, r.DB, &stored, query, args...); err != nil {
		log.Err(err).Str("func", "profileRepository.Upsert").Str("user_id", profile.ID).Msg("failed to upsert profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return stored, nil
}

func (r *profileRepository) List(ctx context.Context) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)

	if err := sqlx.SelectContext(ctx, r.DB, &profiles, selectProfiles); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.List").Msg("failed to list profiles")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profiles, nil
}

func (r *profileRepository) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	var profile models.Profile

	err := sqlx.GetContext(ctx, r.DB, &profile, updateProfileRole, userID, string(role))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Profile{}, ErrProfileNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "profileRepository.UpdateRole").Str("user_id", userID).Msg("failed to update role")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return profile, nil
}
