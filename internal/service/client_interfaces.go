package service

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=mock/client_service_mock.go -package=mock

// BlobUploader stores attachment bytes and returns the durable reference.
// It is satisfied by the server adapter.
type BlobUploader interface {
	UploadBlob(ctx context.Context, path string, data []byte, contentType string) (string, error)
}

// PolicyWriter persists a wizard session and returns the stored record.
// It is satisfied by the server adapter.
type PolicyWriter interface {
	SavePolicy(ctx context.Context, write models.PolicyWrite) (models.PolicyRecord, error)
}

// AttachmentReconciler turns every locally staged attachment into a
// durable reference before submission.
type AttachmentReconciler interface {
	// Reconcile uploads the local payloads of docs into the folder derived
	// from customer and returns the updated list. docs is never modified;
	// on failure no list is returned.
	Reconcile(ctx context.Context, docs models.Documents, customer models.Personal) (models.Documents, error)
}

// ClientSessionService owns the signed-in identity of the dashboard.
type ClientSessionService interface {
	// SignIn installs a token issued by the identity service and remembers it
	// locally.
	SignIn(ctx context.Context, token string) (models.Identity, error)
	// Restore signs in with the remembered token, if any.
	Restore(ctx context.Context) (models.Identity, error)
	SignOut(ctx context.Context) error
	// Identity returns the current identity and whether one is signed in.
	Identity() (models.Identity, bool)
}

// ClientProfileService reads and edits profiles. Every change is announced
// through the coordinator with the profile the server returned.
type ClientProfileService interface {
	Load(ctx context.Context) (models.Profile, error)
	Update(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	List(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)
}

// ClientSharingService is the dashboard side of the sharing ledger.
type ClientSharingService interface {
	Ledger(ctx context.Context, policyID string) (models.ShareLedger, error)
	Grant(ctx context.Context, policyID, email string) (models.ShareLedger, error)
	Revoke(ctx context.Context, policyID, email string) (models.ShareLedger, error)
}

// ClientDashboardService loads everything the dashboard shows in one call.
type ClientDashboardService interface {
	Load(ctx context.Context, view models.PolicyFilter) (models.Dashboard, error)
	Delete(ctx context.Context, id string) error
}

// ClientWizardService opens wizard sessions.
type ClientWizardService interface {
	// New starts a blank application.
	New() *Wizard
	// Open fetches a record fresh and opens it at startStep. readOnly is
	// forced for anyone but the owner.
	Open(ctx context.Context, id string, startStep models.Step, readOnly bool) (*Wizard, error)
	// Resume restores an autosaved session.
	Resume(ctx context.Context, key string) (*Wizard, error)
	// Discard drops an autosaved session.
	Discard(ctx context.Context, key string) error
}

// DeepLinkResolver opens the policy a notification points at.
type DeepLinkResolver interface {
	// OpenFromNotification marks n read, fetches the policy fresh and opens
	// it at the summary step.
	OpenFromNotification(ctx context.Context, n models.Notification) (*Wizard, error)
	// Open handles a request published through the coordinator.
	Open(ctx context.Context, req models.OpenPolicyRequest) (*Wizard, error)
}

// RealtimeBridge refetches the dashboard whenever the server reports a
// change.
type RealtimeBridge interface {
	// Bind subscribes for identity and view. Binding a different identity or
	// view replaces the previous subscription; binding the same pair again is
	// a no-op.
	Bind(ctx context.Context, identity models.Identity, view models.PolicyFilter, refresh RefreshFunc)
	// Close stops the subscription and waits for it to exit.
	Close()
}

// RefreshFunc refetches the dashboard for view.
type RefreshFunc func(ctx context.Context, view models.PolicyFilter)
