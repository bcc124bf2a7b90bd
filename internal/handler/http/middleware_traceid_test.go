package http

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newNopHandler returns a Handler with a nop logger.
func newNopHandler() *Handler {
	return &Handler{logger: logger.Nop()}
}

func traced(h *Handler, incoming string, next http.Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/policies", nil)
	if incoming != "" {
		req.Header.Set(traceIDHeader, incoming)
	}
	rr := httptest.NewRecorder()
	h.withTraceID(next).ServeHTTP(rr, req)
	return rr
}

var okHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
})

func TestWithTraceID_IncomingHeader(t *testing.T) {
	tests := []struct {
		name     string
		incoming string
		keep     bool
	}{
		{"uuid is kept", "550e8400-e29b-41d4-a716-446655440000", true},
		{"client tag is kept", "desk-client.42_retry", true},
		{"missing header", "", false},
		{"spaces are replaced", "trace id", false},
		{"control characters are replaced", "abc\x1bdef", false},
		{"overlong id is replaced", strings.Repeat("a", maxTraceIDLen+1), false},
		{"max length is kept", strings.Repeat("a", maxTraceIDLen), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := traced(newNopHandler(), tt.incoming, okHandler)

			got := rr.Header().Get(traceIDHeader)
			require.NotEmpty(t, got)
			if tt.keep {
				assert.Equal(t, tt.incoming, got)
				return
			}
			id, err := uuid.Parse(got)
			require.NoError(t, err)
			assert.Equal(t, uuid.Version(7), id.Version())
		})
	}
}

func TestWithTraceID_GeneratedIDsAreUnique(t *testing.T) {
	h := newNopHandler()
	seen := make(map[string]struct{})

	for i := 0; i < 100; i++ {
		id := traced(h, "", okHandler).Header().Get(traceIDHeader)
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %s", id)
		seen[id] = struct{}{}
	}
}

func TestWithTraceID_RequestLoggerCarriesID(t *testing.T) {
	var buf bytes.Buffer
	h := &Handler{logger: &logger.Logger{Logger: zerolog.New(&buf)}}

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger.FromRequest(r).Info().Msg("listing policies")
		w.WriteHeader(http.StatusNoContent)
	})
	rr := traced(h, "trace-ravi-1", next)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Contains(t, buf.String(), `"trace_id":"trace-ravi-1"`)
	assert.Contains(t, buf.String(), "listing policies")
}

func TestWithTraceID_OriginalRequestNotMutated(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/policies", nil)
	originalCtx := req.Context()

	newNopHandler().withTraceID(okHandler).ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, originalCtx, req.Context())
}
