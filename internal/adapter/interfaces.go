// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the policy-desk server.
//
// The primary abstraction is [ServerAdapter], which decouples the client
// services from the underlying protocol. The package ships an HTTP/REST
// implementation ([NewHTTPServerAdapter]) built on resty, including a
// Server-Sent Events reader for the change feed.
//
// A non-2xx answer comes back as a [*ResponseError] holding the server's
// message. It matches the status sentinels with [errors.Is], for example
// [ErrConflict] for 409 and [ErrNotFound] for 404.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-policy-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter defines transport-agnostic communication with the policy-desk
// server. Implementations are responsible for serialisation, authentication
// header management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to every authenticated
	// request. Tokens are issued by the external identity service.
	SetToken(token string)

	// Token returns the bearer token currently stored in the adapter, or an
	// empty string if no token has been set yet.
	Token() string

	// Version returns the server build version.
	Version(ctx context.Context) (string, error)

	GetProfile(ctx context.Context) (models.Profile, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error)
	ListProfiles(ctx context.Context) ([]models.Profile, error)
	UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error)

	ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]models.PolicyRecord, error)
	PolicyCounts(ctx context.Context) (models.PolicyCounts, error)
	GetPolicy(ctx context.Context, id string) (models.PolicyRecord, error)

	// SavePolicy creates the application when write.Ref is not persisted and
	// updates it otherwise. It returns the record as stored.
	SavePolicy(ctx context.Context, write models.PolicyWrite) (models.PolicyRecord, error)
	DeletePolicy(ctx context.Context, id string) error

	ListGrants(ctx context.Context, policyID string) (models.ShareLedger, error)
	GrantAccess(ctx context.Context, policyID, email string) (models.ShareLedger, error)
	RevokeAccess(ctx context.Context, policyID, email string) (models.ShareLedger, error)

	ListNotifications(ctx context.Context) (models.NotificationListResponse, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkNotificationRead(ctx context.Context, id string) (models.Notification, error)

	// UploadBlob stores data under path and returns its durable URL.
	UploadBlob(ctx context.Context, path string, data []byte, contentType string) (string, error)

	// SubscribeChanges opens the change stream for the given tables. Events
	// are delivered until ctx is done or the stream breaks; the channel is
	// closed afterwards.
	SubscribeChanges(ctx context.Context, tables ...models.Table) (<-chan models.ChangeEvent, error)
}
