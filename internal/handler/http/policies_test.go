package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/internal/validators"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func storedPolicy(id string, status models.PolicyStatus) models.PolicyRecord {
	form := models.NewFormData()
	form.Personal.FirstName = "Meera"
	form.Personal.LastName = "Iyer"

	at := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return models.PolicyRecord{
		ID:           id,
		OwnerID:      meera.UserID,
		Status:       status,
		FormData:     form,
		LastModified: at,
		CreatedAt:    at,
	}
}

func writeBody(t *testing.T, write models.PolicyWrite) *strings.Reader {
	t.Helper()
	b, err := json.Marshal(write)
	require.NoError(t, err)
	return strings.NewReader(string(b))
}

// ── list ──

func TestListPolicies_PassesFilter(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	records := []models.PolicyRecord{storedPolicy("p-1", models.StatusDraft), storedPolicy("p-2", models.StatusDraft)}

	mocks.policies.EXPECT().
		List(gomock.Any(), meera, models.PolicyFilter{Status: models.StatusDraft, Scope: models.ScopeShared}).
		Return(records, nil)

	rec := serve(t, h, http.MethodGet, "/api/policies?status=DRAFT&scope=shared", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var body models.PolicyListResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 2, body.Length)
	assert.Len(t, body.Policies, 2)
	assert.Equal(t, "p-2", body.Policies[1].ID)
}

func TestListPolicies_EmptyListIsNotNull(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.policies.EXPECT().List(gomock.Any(), meera, models.PolicyFilter{}).Return(nil, nil)

	rec := serve(t, h, http.MethodGet, "/api/policies", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"policies":[],"length":0}`, rec.Body.String())
}

func TestListPolicies_InvalidFilter(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.policies.EXPECT().List(gomock.Any(), meera, gomock.Any()).
		Return(nil, fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidScope))

	rec := serve(t, h, http.MethodGet, "/api/policies?scope=everyone", nil, stubToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Body.String(), app.MsgValidationFailed))
}

func TestCountPolicies(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.policies.EXPECT().Counts(gomock.Any(), meera).Return(models.PolicyCounts{Submitted: 3, Drafts: 1, Shared: 2}, nil)

	rec := serve(t, h, http.MethodGet, "/api/policies/counts", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var counts models.PolicyCounts
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &counts))
	assert.Equal(t, models.PolicyCounts{Submitted: 3, Drafts: 1, Shared: 2}, counts)
}

// ── get ──

func TestGetPolicy(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{name: "visible", wantStatus: http.StatusOK},
		{
			name:       "not visible",
			err:        fmt.Errorf("error getting policy: %w", store.ErrPolicyNotFound),
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgPolicyNotFound + "\n",
		},
		{
			name:       "database failure",
			err:        fmt.Errorf("%w: boom", store.ErrExecutingQuery),
			wantStatus: http.StatusInternalServerError,
			wantBody:   app.MsgInternalServerError + "\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, Settings{})
			record := storedPolicy("p-1", models.StatusSubmitted)
			if tt.err != nil {
				record = models.PolicyRecord{}
			}
			mocks.policies.EXPECT().Get(gomock.Any(), meera, "p-1").Return(record, tt.err)

			rec := serve(t, h, http.MethodGet, "/api/policies/p-1", nil, stubToken)

			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.err != nil {
				assert.Equal(t, tt.wantBody, rec.Body.String())
				return
			}
			var got models.PolicyRecord
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			assert.Equal(t, "p-1", got.ID)
			assert.Equal(t, "Meera", got.FormData.Personal.FirstName)
		})
	}
}

// ── save ──

func TestCreatePolicy_IgnoresRefInBody(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})

	write := models.PolicyWrite{Ref: models.Persisted("someone-elses"), Status: models.StatusDraft, FormData: models.NewFormData()}
	mocks.policies.EXPECT().
		Save(gomock.Any(), meera, gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, got models.PolicyWrite) (models.PolicyRecord, error) {
			assert.False(t, got.Ref.IsPersisted(), "POST always creates")
			assert.Equal(t, models.StatusDraft, got.Status)
			return storedPolicy("p-new", models.StatusDraft), nil
		})

	rec := serve(t, h, http.MethodPost, "/api/policies", writeBody(t, write), stubToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	var got models.PolicyRecord
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "p-new", got.ID)
}

func TestUpdatePolicy_UsesPathID(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})

	write := models.PolicyWrite{Status: models.StatusSubmitted, FormData: models.NewFormData()}
	mocks.policies.EXPECT().
		Save(gomock.Any(), meera, gomock.Any()).
		DoAndReturn(func(_ any, _ models.Identity, got models.PolicyWrite) (models.PolicyRecord, error) {
			id, ok := got.Ref.ID()
			assert.True(t, ok)
			assert.Equal(t, "p-7", id)
			return storedPolicy("p-7", models.StatusSubmitted), nil
		})

	rec := serve(t, h, http.MethodPut, "/api/policies/p-7", writeBody(t, write), stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestSavePolicy_Errors(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		err        error
		wantStatus int
		wantPrefix string
	}{
		{
			name:       "malformed body",
			body:       `{"status":`,
			wantStatus: http.StatusBadRequest,
			wantPrefix: app.MsgInvalidDataProvided,
		},
		{
			name:       "missing fields",
			body:       `{"status":"SUBMITTED"}`,
			err:        fmt.Errorf("%w: %w", service.ErrValidation, &validators.ValidationError{Missing: []models.FieldPath{"personal.firstName"}}),
			wantStatus: http.StatusBadRequest,
			wantPrefix: "validation failed: required field is empty: personal.firstName",
		},
		{
			name:       "foreign record",
			body:       `{"status":"DRAFT"}`,
			err:        store.ErrPolicyNotFound,
			wantStatus: http.StatusNotFound,
			wantPrefix: app.MsgPolicyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, Settings{})
			if tt.err != nil {
				mocks.policies.EXPECT().Save(gomock.Any(), meera, gomock.Any()).Return(models.PolicyRecord{}, tt.err)
			}

			rec := serve(t, h, http.MethodPut, "/api/policies/p-1", strings.NewReader(tt.body), stubToken)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.True(t, strings.HasPrefix(rec.Body.String(), tt.wantPrefix), rec.Body.String())
		})
	}
}

// ── delete ──

func TestDeletePolicy(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.policies.EXPECT().Delete(gomock.Any(), meera, "p-1").Return(nil)
	mocks.policies.EXPECT().Delete(gomock.Any(), meera, "p-2").Return(fmt.Errorf("error deleting policy: %w", store.ErrPolicyNotFound))

	rec := serve(t, h, http.MethodDelete, "/api/policies/p-1", nil, stubToken)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(t, h, http.MethodDelete, "/api/policies/p-2", nil, stubToken)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
