package http

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestGetProfile(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	mocks.profiles.EXPECT().GetProfile(gomock.Any(), meera).Return(models.DefaultProfile(meera), nil)

	rec := serve(t, h, http.MethodGet, "/api/profile", nil, stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, models.RoleAgent, profile.Role)
	assert.Equal(t, meera.Email, profile.Email)
}

func TestUpdateProfile(t *testing.T) {
	h, mocks := newTestHandler(t, Settings{})
	update := models.ProfileUpdate{FirstName: "Meera", LastName: "Iyer", AgentCode: "AG-12"}
	mocks.profiles.EXPECT().UpdateProfile(gomock.Any(), meera, update).
		Return(models.Profile{ID: meera.UserID, Email: meera.Email, FirstName: "Meera", LastName: "Iyer", AgentCode: "AG-12", Role: models.RoleAgent}, nil)

	rec := serve(t, h, http.MethodPut, "/api/profile",
		strings.NewReader(`{"first_name":"Meera","last_name":"Iyer","agent_code":"AG-12"}`), stubToken)

	require.Equal(t, http.StatusOK, rec.Code)
	var profile models.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &profile))
	assert.Equal(t, "Meera Iyer", profile.DisplayName())
}

func TestListProfiles(t *testing.T) {
	t.Run("admin", func(t *testing.T) {
		h, mocks := newTestHandler(t, Settings{})
		mocks.profiles.EXPECT().ListProfiles(gomock.Any(), meera).Return(nil, nil)

		rec := serve(t, h, http.MethodGet, "/api/profiles", nil, stubToken)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[]`, rec.Body.String())
	})

	t.Run("not an admin", func(t *testing.T) {
		h, mocks := newTestHandler(t, Settings{})
		mocks.profiles.EXPECT().ListProfiles(gomock.Any(), meera).Return(nil, service.ErrAdminRequired)

		rec := serve(t, h, http.MethodGet, "/api/profiles", nil, stubToken)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, app.MsgAdminRequired+"\n", rec.Body.String())
	})
}

func TestUpdateRole(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "promoted", wantStatus: http.StatusOK},
		{name: "not an admin", err: service.ErrAdminRequired, wantStatus: http.StatusForbidden},
		{name: "unknown user", err: fmt.Errorf("error updating role: %w", store.ErrProfileNotFound), wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, mocks := newTestHandler(t, Settings{})
			mocks.profiles.EXPECT().UpdateRole(gomock.Any(), meera, "u-2", models.RoleAdmin).
				Return(models.Profile{ID: "u-2", Role: models.RoleAdmin}, tt.err)

			rec := serve(t, h, http.MethodPut, "/api/profiles/u-2/role", strings.NewReader(`{"role":"admin"}`), stubToken)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
