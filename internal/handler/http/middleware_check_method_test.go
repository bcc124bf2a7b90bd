// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
)

// policyRouter mirrors the shape of the policy routes without services.
func policyRouter() *chi.Mux {
	status := func(code int) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) { w.WriteHeader(code) }
	}

	router := chi.NewRouter()
	router.Get("/api/version", status(http.StatusOK))
	router.Route("/api/policies", func(r chi.Router) {
		r.Get("/", status(http.StatusOK))
		r.Post("/", status(http.StatusCreated))
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", status(http.StatusOK))
			r.Delete("/", status(http.StatusNoContent))
			r.Delete("/shares/{email}", status(http.StatusOK))
		})
	})
	router.MethodNotAllowed(hideMethodNotAllowed)
	return router
}

func TestHideMethodNotAllowed(t *testing.T) {
	router := policyRouter()

	tests := []struct {
		name   string
		method string
		path   string
		want   int
	}{
		{"list", http.MethodGet, "/api/policies", http.StatusOK},
		{"create", http.MethodPost, "/api/policies", http.StatusCreated},
		{"read", http.MethodGet, "/api/policies/p-1", http.StatusOK},
		{"delete", http.MethodDelete, "/api/policies/p-1", http.StatusNoContent},
		{"revoke", http.MethodDelete, "/api/policies/p-1/shares/arjun@agency.in", http.StatusOK},

		{"patch policy", http.MethodPatch, "/api/policies/p-1", http.StatusNotFound},
		{"put collection", http.MethodPut, "/api/policies", http.StatusNotFound},
		{"get revoke path", http.MethodGet, "/api/policies/p-1/shares/arjun@agency.in", http.StatusNotFound},
		{"post version", http.MethodPost, "/api/version", http.StatusNotFound},
		{"unknown path", http.MethodGet, "/api/claims", http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.want, rr.Code)
			assert.NotEqual(t, http.StatusMethodNotAllowed, rr.Code)
			assert.Empty(t, rr.Header().Get("Allow"))
		})
	}
}
