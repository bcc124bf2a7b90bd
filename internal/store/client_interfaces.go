package store

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// LocalSessionRepository keeps the single remembered sign-in of the client.
type LocalSessionRepository interface {
	Save(ctx context.Context, session models.LocalSession) error
	Get(ctx context.Context) (models.LocalSession, error)
	Clear(ctx context.Context) error
}

// SnapshotRepository keeps autosaved wizard sessions keyed by
// [models.SnapshotKey].
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot models.WizardSnapshot) error
	Get(ctx context.Context, key string) (models.WizardSnapshot, error)
	Delete(ctx context.Context, key string) error
}

// ClientStorages groups the client's local repositories.
type ClientStorages struct {
	Sessions  LocalSessionRepository
	Snapshots SnapshotRepository
}

// NewClientStorages builds the local repositories on db.
func NewClientStorages(db *DB, logger *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Sessions:  NewLocalSessionRepository(db, logger),
		Snapshots: NewSnapshotRepository(db, logger),
	}
}
