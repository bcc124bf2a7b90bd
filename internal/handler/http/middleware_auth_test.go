package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	servicemock "github.com/MKhiriev/go-policy-desk/internal/service/mock"
	"github.com/MKhiriev/go-policy-desk/internal/utils"
	"github.com/MKhiriev/go-policy-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// ---- Helpers ----

func newHandlerWithAuthService(authSvc service.AuthService) *Handler {
	return &Handler{
		logger: logger.Nop(),
		services: &service.Services{
			AuthService: authSvc,
		},
	}
}

// injectNopLogger puts a nop logger into the request context.
func injectNopLogger(r *http.Request) *http.Request {
	nop := logger.Nop()
	ctx := nop.Logger.WithContext(r.Context())
	return r.WithContext(ctx)
}

func executeAuth(h *Handler, authHeader string, next http.Handler) *httptest.ResponseRecorder {
	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)
	return rr
}

var meera = models.Identity{UserID: "u-1", Email: "meera@example.com"}

// ---- auth middleware table test ----

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parseErr       error
		parseCalled    bool
		expectedStatus int
		nextCalled     bool
	}{
		{
			name:           "empty Authorization header → 401",
			authHeader:     "",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "invalid header format (no space) → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "basic credentials are not accepted → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "extra parts → 401",
			authHeader:     "Bearer token extra-part",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "lower-case scheme → next called",
			authHeader:     "bearer valid-token",
			parseCalled:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "valid token → next called",
			authHeader:     "Bearer valid-token",
			parseCalled:    true,
			expectedStatus: http.StatusOK,
			nextCalled:     true,
		},
		{
			name:           "expired or invalid token → 401",
			authHeader:     "Bearer bad-token",
			parseErr:       service.ErrTokenIsExpiredOrInvalid,
			parseCalled:    true,
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			authSvc := servicemock.NewMockAuthService(ctrl)
			if tt.parseCalled {
				identity := meera
				if tt.parseErr != nil {
					identity = models.Identity{}
				}
				authSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(identity, tt.parseErr)
			}

			h := newHandlerWithAuthService(authSvc)

			nextCalled := false
			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				w.WriteHeader(http.StatusOK)
			})

			rr := executeAuth(h, tt.authHeader, next)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.nextCalled, nextCalled)
		})
	}
}

// ---- Error bodies ----

func TestAuth_ErrorResponseBodies(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicemock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "expired").Return(models.Identity{}, service.ErrTokenIsExpiredOrInvalid)

	h := newHandlerWithAuthService(authSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	t.Run("empty header error body", func(t *testing.T) {
		rr := executeAuth(h, "", next)
		assert.Contains(t, rr.Body.String(), ErrEmptyAuthorizationHeader.Error())
	})

	t.Run("wrong scheme error body", func(t *testing.T) {
		rr := executeAuth(h, "Basic abc", next)
		assert.Contains(t, rr.Body.String(), ErrInvalidAuthorizationHeader.Error())
	})

	t.Run("expired token error body", func(t *testing.T) {
		rr := executeAuth(h, "Bearer expired", next)
		assert.Equal(t, "token is expired or invalid\n", rr.Body.String())
	})
}

// ---- Identity reaches the handler ----

func TestAuth_IdentityInContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicemock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), "some-token").Return(meera, nil)

	h := newHandlerWithAuthService(authSvc)

	var got models.Identity
	var found bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got, found = utils.GetIdentityFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	rr := executeAuth(h, "Bearer some-token", next)

	require.Equal(t, http.StatusOK, rr.Code)
	require.True(t, found)
	assert.Equal(t, meera, got)
}

// ---- Original context is not mutated ----

func TestAuth_OriginalRequestNotMutated(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicemock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(meera, nil)

	h := newHandlerWithAuthService(authSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	middleware := h.auth(next)
	req := httptest.NewRequest(http.MethodGet, "/test", nil)
	req = injectNopLogger(req)
	req.Header.Set("Authorization", "Bearer token")
	originalCtx := req.Context()

	rr := httptest.NewRecorder()
	middleware.ServeHTTP(rr, req)

	assert.Equal(t, originalCtx, req.Context(), "original request context must not be mutated")
	_, found := utils.GetIdentityFromContext(req.Context())
	assert.False(t, found)
}

// ---- Concurrent requests ----

func TestAuth_ConcurrentRequests(t *testing.T) {
	ctrl := gomock.NewController(t)
	authSvc := servicemock.NewMockAuthService(ctrl)
	authSvc.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(meera, nil).AnyTimes()

	h := newHandlerWithAuthService(authSvc)
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	middleware := h.auth(next)

	const n = 50
	done := make(chan int, n)

	for i := 0; i < n; i++ {
		go func() {
			req := httptest.NewRequest(http.MethodGet, "/test", nil)
			req = injectNopLogger(req)
			req.Header.Set("Authorization", "Bearer concurrent-token")
			rr := httptest.NewRecorder()
			middleware.ServeHTTP(rr, req)
			done <- rr.Code
		}()
	}

	for i := 0; i < n; i++ {
		code := <-done
		assert.Equal(t, http.StatusOK, code)
	}
}
