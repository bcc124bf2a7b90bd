package adapter

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	// stream has no request timeout; it carries the long-lived change feed.
	stream *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.ServerURL and
// configures the underlying HTTP client with the resolved base URL and request
// timeout. The token from appCfg, if any, is installed right away.
//
// Returns an error if adapterCfg.ServerURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.ServerURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter server url: %w", err)
	}

	client := utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout)
	stream := utils.NewHTTPClient(baseURL, 0)

	h := &httpServerAdapter{client: client, stream: stream, logger: logger}
	h.SetToken(appCfg.Token)
	return h, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Version implements [ServerAdapter] via GET /api/version. No token is needed.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	var body models.VersionResponse

	resp, err := h.client.R().
		SetContext(ctx).
		SetResult(&body).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	return body.Version, nil
}

func (h *httpServerAdapter) GetProfile(ctx context.Context) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profile).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(update).
		SetResult(&profile).
		Put("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

func (h *httpServerAdapter) ListProfiles(ctx context.Context) ([]models.Profile, error) {
	var profiles []models.Profile

	resp, err := h.authedRequest(ctx).
		SetResult(&profiles).
		Get("/api/profiles")
	if err != nil {
		return nil, fmt.Errorf("list profiles request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}
	return profiles, nil
}

// UpdateRole implements [ServerAdapter] via PUT /api/profiles/{userID}/role.
// The returned profile is the server's row after the change.
func (h *httpServerAdapter) UpdateRole(ctx context.Context, userID string, role models.Role) (models.Profile, error) {
	var profile models.Profile

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("userID", userID).
		SetBody(models.RoleUpdate{Role: role}).
		SetResult(&profile).
		Put("/api/profiles/{userID}/role")
	if err != nil {
		return models.Profile{}, fmt.Errorf("update role request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}
	return profile, nil
}

// ListPolicies implements [ServerAdapter] via GET /api/policies. Empty filter
// fields are not sent.
func (h *httpServerAdapter) ListPolicies(ctx context.Context, filter models.PolicyFilter) ([]models.PolicyRecord, error) {
	var list models.PolicyListResponse

	req := h.authedRequest(ctx).SetResult(&list)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}
	if filter.Scope != "" {
		req.SetQueryParam("scope", string(filter.Scope))
	}

	resp, err := req.Get("/api/policies")
	if err != nil {
		return nil, fmt.Errorf("list policies request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	if list.Length != len(list.Policies) {
		return nil, fmt.Errorf("list policies: length %d does not match %d records", list.Length, len(list.Policies))
	}
	return list.Policies, nil
}

func (h *httpServerAdapter) PolicyCounts(ctx context.Context) (models.PolicyCounts, error) {
	var counts models.PolicyCounts

	resp, err := h.authedRequest(ctx).
		SetResult(&counts).
		Get("/api/policies/counts")
	if err != nil {
		return models.PolicyCounts{}, fmt.Errorf("policy counts request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PolicyCounts{}, err
	}
	return counts, nil
}

func (h *httpServerAdapter) GetPolicy(ctx context.Context, id string) (models.PolicyRecord, error) {
	var record models.PolicyRecord

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&record).
		Get("/api/policies/{id}")
	if err != nil {
		return models.PolicyRecord{}, fmt.Errorf("get policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PolicyRecord{}, err
	}
	return record, nil
}

// SavePolicy implements [ServerAdapter]. A not-persisted write is POSTed to
// /api/policies, a persisted one PUT to /api/policies/{id}.
func (h *httpServerAdapter) SavePolicy(ctx context.Context, write models.PolicyWrite) (models.PolicyRecord, error) {
	var record models.PolicyRecord

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(write).
		SetResult(&record)

	var (
		resp *resty.Response
		err  error
	)
	if id, ok := write.Ref.ID(); ok {
		resp, err = req.SetPathParam("id", id).Put("/api/policies/{id}")
	} else {
		resp, err = req.Post("/api/policies")
	}
	if err != nil {
		return models.PolicyRecord{}, fmt.Errorf("save policy request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PolicyRecord{}, err
	}
	return record, nil
}

func (h *httpServerAdapter) DeletePolicy(ctx context.Context, id string) error {
	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		Delete("/api/policies/{id}")
	if err != nil {
		return fmt.Errorf("delete policy request: %w", err)
	}
	return mapHTTPError(resp)
}

func (h *httpServerAdapter) ListGrants(ctx context.Context, policyID string) (models.ShareLedger, error) {
	var ledger models.ShareLedger

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", policyID).
		SetResult(&ledger).
		Get("/api/policies/{id}/shares")
	if err != nil {
		return models.ShareLedger{}, fmt.Errorf("list grants request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLedger{}, err
	}
	return ledger, nil
}

func (h *httpServerAdapter) GrantAccess(ctx context.Context, policyID, email string) (models.ShareLedger, error) {
	var ledger models.ShareLedger

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetPathParam("id", policyID).
		SetBody(models.ShareRequest{Email: email}).
		SetResult(&ledger).
		Post("/api/policies/{id}/shares")
	if err != nil {
		return models.ShareLedger{}, fmt.Errorf("grant access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLedger{}, err
	}
	return ledger, nil
}

func (h *httpServerAdapter) RevokeAccess(ctx context.Context, policyID, email string) (models.ShareLedger, error) {
	var ledger models.ShareLedger

	resp, err := h.authedRequest(ctx).
		SetPathParams(map[string]string{"id": policyID, "email": email}).
		SetResult(&ledger).
		Delete("/api/policies/{id}/shares/{email}")
	if err != nil {
		return models.ShareLedger{}, fmt.Errorf("revoke access request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.ShareLedger{}, err
	}
	return ledger, nil
}

func (h *httpServerAdapter) ListNotifications(ctx context.Context) (models.NotificationListResponse, error) {
	var list models.NotificationListResponse

	resp, err := h.authedRequest(ctx).
		SetResult(&list).
		Get("/api/notifications")
	if err != nil {
		return models.NotificationListResponse{}, fmt.Errorf("list notifications request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.NotificationListResponse{}, err
	}
	return list, nil
}

func (h *httpServerAdapter) UnreadCount(ctx context.Context) (int, error) {
	var count models.UnreadCount

	resp, err := h.authedRequest(ctx).
		SetResult(&count).
		Get("/api/notifications/unread")
	if err != nil {
		return 0, fmt.Errorf("unread count request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return 0, err
	}
	return count.Unread, nil
}

func (h *httpServerAdapter) MarkNotificationRead(ctx context.Context, id string) (models.Notification, error) {
	var notification models.Notification

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", id).
		SetResult(&notification).
		Post("/api/notifications/{id}/read")
	if err != nil {
		return models.Notification{}, fmt.Errorf("mark read request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Notification{}, err
	}
	return notification, nil
}

// UploadBlob implements [ServerAdapter] via PUT /api/blobs?path=. The body is
// sent raw.
func (h *httpServerAdapter) UploadBlob(ctx context.Context, path string, data []byte, contentType string) (string, error) {
	if contentType == "" {
		contentType = "application/octet-stream"
	}

	var uploaded models.BlobUploadResponse
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", contentType).
		SetQueryParam("path", path).
		SetBody(data).
		SetResult(&uploaded).
		Put("/api/blobs")
	if err != nil {
		return "", fmt.Errorf("upload blob request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}
	if uploaded.URL == "" {
		return "", errors.New("upload blob: server returned no url")
	}
	return uploaded.URL, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	return h.withToken(h.client.R().SetContext(ctx))
}

func (h *httpServerAdapter) withToken(req *resty.Request) *resty.Request {
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
