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

func ledgerWith(emails ...string) models.ShareLedger {
	ledger := models.ShareLedger{PolicyID: "p-1", Grants: []models.ShareGrant{}}
	for _, e := range emails {
		ledger.Grants = append(ledger.Grants, models.ShareGrant{
			PolicyID:       "p-1",
			RecipientEmail: e,
			GrantedBy:      meera.UserID,
			CreatedAt:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
		})
	}
	return ledger
}

func TestListGrants(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.sharing.EXPECT().ListGrants(gomock.Any(), meera, "p-1").Return(ledgerWith("ravi@example.com"), nil)

	rec := serve(t, h, http.MethodGet, "/api/policies/p-1/shares", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var ledger models.ShareLedger
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ledger))
	assert.Equal(t, []string{"ravi@example.com"}, ledger.Recipients())
}

func TestGrantAccess_ReturnsLedger(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.sharing.EXPECT().Grant(gomock.Any(), meera, "p-1", " Ravi@Example.com ").Return(ledgerWith("ravi@example.com"), nil)

	rec := serve(t, h, http.MethodPost, "/api/policies/p-1/shares", strings.NewReader(`{"email":" Ravi@Example.com "}`), stubToken)

	require.Equal(t, http.StatusCreated, rec.Code)
	var ledger models.ShareLedger
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &ledger))
	assert.Equal(t, []string{"ravi@example.com"}, ledger.Recipients())
}

func TestGrantAccess_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
	}{
		{
			name:       "self share",
			err:        service.ErrSelfShare,
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgSelfShare,
		},
		{
			name:       "invalid email",
			err:        fmt.Errorf("%w: %w", service.ErrValidation, validators.ErrInvalidEmail),
			wantStatus: http.StatusBadRequest,
			wantBody:   app.MsgInvalidEmail,
		},
		{
			name:       "duplicate",
			err:        fmt.Errorf("error granting access: %w", store.ErrDuplicateGrant),
			wantStatus: http.StatusConflict,
			wantBody:   app.MsgDuplicateGrant,
		},
		{
			name:       "not the owner",
			err:        service.ErrNotPolicyOwner,
			wantStatus: http.StatusNotFound,
			wantBody:   app.MsgPolicyNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, Settings{})
			mocks.sharing.EXPECT().Grant(gomock.Any(), meera, "p-1", gomock.Any()).Return(models.ShareLedger{}, tt.err)

			rec := serve(t, h, http.MethodPost, "/api/policies/p-1/shares", strings.NewReader(`{"email":"x@example.com"}`), stubToken)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantBody+"\n", rec.Body.String())
		})
	}
}

func TestGrantAccess_MalformedBody(t *testing.T) {
	h, _ := newTestHandler(t, Settings{})

	rec := serve(t, h, http.MethodPost, "/api/policies/p-1/shares", strings.NewReader(`email=x`), stubToken)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, app.MsgInvalidDataProvided+"\n", rec.Body.String())
}

func TestRevokeAccess_DecodesEmail(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.sharing.EXPECT().Revoke(gomock.Any(), meera, "p-1", "ravi+x@example.com").Return(ledgerWith(), nil)

	rec := serve(t, h, http.MethodDelete, "/api/policies/p-1/shares/ravi%2Bx@example.com", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"policy_id":"p-1","grants":[]}`, rec.Body.String())
}
