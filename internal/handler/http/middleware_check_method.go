// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-policy-desk/internal/logger"
)

// hideMethodNotAllowed is the router's MethodNotAllowed handler. chi calls
// it when a path exists but not for the request's method; answering 404
// instead of 405 keeps the verbs of /api/policies/{id} and friends from
// telling a caller that a route exists, the same answer an invisible policy
// gets. No Allow header is sent.
func hideMethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	logger.FromRequest(r).Debug().
		Str("func", "hideMethodNotAllowed").
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Msg("method not allowed, answering 404")

	w.Header().Del("Allow")
	http.Error(w, http.StatusText(http.StatusNotFound), http.StatusNotFound)
}
