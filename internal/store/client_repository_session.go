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

type localSessionRepository struct {
	*DB
	logger *logger.Logger
}

// NewLocalSessionRepository constructs a [LocalSessionRepository] on the
// client's sqlite database.
func NewLocalSessionRepository(db *DB, logger *logger.Logger) LocalSessionRepository {
	return &localSessionRepository{
		DB:     db,
		logger: logger,
	}
}

func (r *localSessionRepository) Save(ctx context.Context, session models.LocalSession) error {
	if _, err := r.DB.NamedExecContext(ctx, saveLocalSession, session); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.Save").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *localSessionRepository) Get(ctx context.Context) (models.LocalSession, error) {
	var session models.LocalSession

	err := sqlx.GetContext(ctx, r.DB, &session, selectLocalSession)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LocalSession{}, ErrLocalSessionNotFound
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.Get").Msg("failed to read session")
		return models.LocalSession{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *localSessionRepository) Clear(ctx context.Context) error {
	if _, err := r.DB.ExecContext(ctx, deleteLocalSession); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localSessionRepository.Clear").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
