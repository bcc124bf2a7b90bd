package service

import (
	"context"
	"testing"
	"time"

	"github.com/MKhiriev/go-policy-desk/internal/config"
	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testSignKey = "test-sign-key"
	testIssuer  = "identity.example"
)

func signedToken(t *testing.T, issuer, key string, identity models.Identity, ttl time.Duration) string {
	t.Helper()
	token, err := utils.GenerateJWTToken(issuer, identity, ttl, key)
	require.NoError(t, err)
	return token.String()
}

func TestAuthService_ParseToken(t *testing.T) {
	svc := NewAuthService(config.App{TokenSignKey: testSignKey, TokenIssuer: testIssuer}, logger.Nop())

	tests := []struct {
		name    string
		token   string
		want    models.Identity
		wantErr bool
	}{
		{
			name:  "valid token",
			token: signedToken(t, testIssuer, testSignKey, models.Identity{UserID: "u1", Email: "Asha@Example.com"}, time.Hour),
			want:  models.Identity{UserID: "u1", Email: "asha@example.com"},
		},
		{
			name:    "wrong signature",
			token:   signedToken(t, testIssuer, "other-key", models.Identity{UserID: "u1", Email: "a@x.io"}, time.Hour),
			wantErr: true,
		},
		{
			name:    "wrong issuer",
			token:   signedToken(t, "someone-else", testSignKey, models.Identity{UserID: "u1", Email: "a@x.io"}, time.Hour),
			wantErr: true,
		},
		{
			name:    "expired",
			token:   signedToken(t, testIssuer, testSignKey, models.Identity{UserID: "u1", Email: "a@x.io"}, -time.Minute),
			wantErr: true,
		},
		{
			name:    "garbage",
			token:   "not.a.token",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := svc.ParseToken(context.Background(), tt.token)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrTokenIsExpiredOrInvalid)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
