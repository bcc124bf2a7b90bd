package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-policy-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=mock/service_mock.go -package=mock

type AuthService interface {
	// ParseToken verifies a bearer token and returns the caller identity.
	ParseToken(ctx context.Context, tokenString string) (models.Identity, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// PolicyService persists applications on behalf of the caller identity.
// Every command returns the authoritative record as stored.
type PolicyService interface {
	Save(ctx context.Context, identity models.Identity, write models.PolicyWrite) (models.PolicyRecord, error)
	Get(ctx context.Context, identity models.Identity, id string) (models.PolicyRecord, error)
	List(ctx context.Context, identity models.Identity, filter models.PolicyFilter) ([]models.PolicyRecord, error)
	Counts(ctx context.Context, identity models.Identity) (models.PolicyCounts, error)
	Delete(ctx context.Context, identity models.Identity, id string) error
}

// SharingService is the sharing ledger. Only the policy owner may read or
// change it; every command returns the ledger after the change.
type SharingService interface {
	Grant(ctx context.Context, actor models.Identity, policyID, email string) (models.ShareLedger, error)
	Revoke(ctx context.Context, actor models.Identity, policyID, email string) (models.ShareLedger, error)
	ListGrants(ctx context.Context, actor models.Identity, policyID string) (models.ShareLedger, error)
}

type NotificationService interface {
	List(ctx context.Context, viewer models.Identity) ([]models.Notification, error)
	UnreadCount(ctx context.Context, viewer models.Identity) (int, error)
	MarkRead(ctx context.Context, viewer models.Identity, id string) (models.Notification, error)
}

type ProfileService interface {
	GetProfile(ctx context.Context, identity models.Identity) (models.Profile, error)
	UpdateProfile(ctx context.Context, identity models.Identity, update models.ProfileUpdate) (models.Profile, error)
	// ListProfiles and UpdateRole require the admin role.
	ListProfiles(ctx context.Context, actor models.Identity) ([]models.Profile, error)
	UpdateRole(ctx context.Context, actor models.Identity, userID string, role models.Role) (models.Profile, error)
}

type BlobService interface {
	// Upload stores body under path and returns its durable URL.
	Upload(ctx context.Context, identity models.Identity, path string, body io.Reader, size int64, contentType string) (string, error)
}

type ChangeService interface {
	// Subscribe streams change events of the given tables until ctx is done.
	Subscribe(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error)
}

// PolicyServiceWrapper defines middleware composition for PolicyService.
// Implementations wrap an existing PolicyService to add behavior such as
// logging or validating.
type PolicyServiceWrapper interface {
	Wrap(PolicyService) PolicyService // returns a decorated PolicyService applying additional behavior
}
