package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

// Storages groups every server-side storage the service layer needs.
type Storages struct {
	PolicyStorage       PolicyStorage
	SharingStorage      SharingStorage
	NotificationStorage NotificationStorage
	ProfileRepository   ProfileRepository
	BlobStore           BlobStore
	ChangeFeed          ChangeFeed

	db *DB
}

// NewStorages connects to Postgres, applies migrations and wires the blob
// store and the change feed. Redis is used for the feed when an address is
// configured, the in-process feed otherwise.
func NewStorages(ctx context.Context, cfg config.Storage, ids IDGenerator, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	if err = db.Migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("error applying migrations: %w", err)
	}

	blobs, err := NewBlobStore(ctx, cfg.Blob, log)
	if err != nil {
		db.Close()
		return nil, err
	}

	var feed ChangeFeed
	if cfg.Redis.Addr != "" {
		feed, err = NewRedisFeed(ctx, cfg.Redis, log)
		if err != nil {
			db.Close()
			return nil, err
		}
	} else {
		feed = NewMemoryFeed(log)
	}

	return &Storages{
		PolicyStorage:       NewPolicyStorage(NewPolicyRepository(db, log), feed, ids, log),
		SharingStorage:      NewSharingStorage(NewShareRepository(db, log), feed, log),
		NotificationStorage: NewNotificationStorage(NewNotificationRepository(db, log), feed, log),
		ProfileRepository:   NewProfileRepository(db, log),
		BlobStore:           blobs,
		ChangeFeed:          feed,
		db:                  db,
	}, nil
}

// Close releases the feed and the database connection.
func (s *Storages) Close() error {
	var errs []error
	if s.ChangeFeed != nil {
		errs = append(errs, s.ChangeFeed.Close())
	}
	if s.db != nil {
		errs = append(errs, s.db.Close())
	}
	return errors.Join(errs...)
}
