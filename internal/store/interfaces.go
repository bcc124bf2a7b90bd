package store

import (
	"context"
	"io"

	"github.com/MKhiriev/go-policy-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// PolicyRepository is the Postgres access layer of the policies table.
type PolicyRepository interface {
	// Upsert writes one application under id in a single statement. An
	// existing row owned by someone else is left untouched and reported as
	// [ErrPolicyNotFound].
	Upsert(ctx context.Context, id, ownerID string, status models.PolicyStatus, form models.FormData) (models.PolicyRecord, error)
	Get(ctx context.Context, id string, viewer models.Identity) (models.PolicyRecord, error)
	List(ctx context.Context, viewer models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error)
	Counts(ctx context.Context, viewer models.Identity) (models.PolicyCounts, error)
	Delete(ctx context.Context, id, ownerID string) error
	OwnerOf(ctx context.Context, id string) (string, error)
}

// ShareRepository is the access layer of the sharing ledger.
type ShareRepository interface {
	// Grant inserts the grant and its notification in one transaction.
	Grant(ctx context.Context, grant models.ShareGrant, notification models.Notification) error
	// Revoke deletes a grant and reports whether one existed.
	Revoke(ctx context.Context, policyID, email string) (bool, error)
	List(ctx context.Context, policyID string) ([]models.ShareGrant, error)
	Exists(ctx context.Context, policyID, email string) (bool, error)
}

// NotificationRepository is the access layer of the notifications table.
type NotificationRepository interface {
	List(ctx context.Context, email string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, email string) (int, error)
	MarkRead(ctx context.Context, id, email string) (models.Notification, error)
}

// ProfileRepository is the access layer of the profiles table.
type ProfileRepository interface {
	Get(ctx context.Context, userID string) (models.Profile, error)
	Upsert(ctx context.Context, profile models.Profile) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)
}

// BlobStore keeps uploaded attachment bytes and hands out durable URLs.
type BlobStore interface {
	Put(ctx context.Context, key string, body io.Reader, size int64, contentType string) (string, error)
}

// ChangeFeed broadcasts "something changed" events per table.
type ChangeFeed interface {
	Publish(ctx context.Context, event models.ChangeEvent) error
	// Subscribe delivers events of the given tables until ctx is done; the
	// channel is closed afterwards.
	Subscribe(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error)
	Close() error
}

// PolicyStorage persists applications and announces every write.
type PolicyStorage interface {
	Save(ctx context.Context, ownerID string, write models.PolicyWrite) (models.PolicyRecord, error)
	Get(ctx context.Context, id string, viewer models.Identity) (models.PolicyRecord, error)
	List(ctx context.Context, viewer models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error)
	Counts(ctx context.Context, viewer models.Identity) (models.PolicyCounts, error)
	Delete(ctx context.Context, id, ownerID string) error
	OwnerOf(ctx context.Context, id string) (string, error)
}

// SharingStorage maintains the ledger and returns it after every command.
type SharingStorage interface {
	Grant(ctx context.Context, grant models.ShareGrant, notification models.Notification) (models.ShareLedger, error)
	Revoke(ctx context.Context, policyID, email string) (models.ShareLedger, error)
	Ledger(ctx context.Context, policyID string) (models.ShareLedger, error)
	HasGrant(ctx context.Context, policyID, email string) (bool, error)
}

// NotificationStorage reads notifications and flips their read flag.
type NotificationStorage interface {
	List(ctx context.Context, email string) ([]models.Notification, error)
	UnreadCount(ctx context.Context, email string) (int, error)
	MarkRead(ctx context.Context, id, email string) (models.Notification, error)
}
