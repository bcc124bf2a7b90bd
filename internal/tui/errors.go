// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/service"
	"github.com/MKhiriev/go-policy-desk/internal/store"
)

func humanizeServerUnavailableError(err error) string {
	if err == nil {
		return ""
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "Network is down or the server is unreachable"
	}

	return err.Error()
}

// humanizeError turns service errors into the line shown under a page.
func humanizeError(err error) string {
	var reconcileErr *service.ReconciliationError
	switch {
	case err == nil:
		return ""
	case errors.As(err, &reconcileErr):
		return "Upload failed for " + reconcileErr.Document + ", nothing was submitted"
	case errors.Is(err, service.ErrTokenIsExpiredOrInvalid):
		return "Session expired, sign in again"
	case errors.Is(err, service.ErrWizardReadOnly):
		return "This application is shared with you read-only"
	case errors.Is(err, service.ErrWizardSubmitted):
		return "Submitted applications are locked, press ctrl+e to reopen"
	case errors.Is(err, service.ErrWizardBusy):
		return "Saving, please wait"
	case errors.Is(err, service.ErrSelfShare):
		return "You cannot share a policy with yourself"
	case errors.Is(err, store.ErrDuplicateGrant):
		return "Already shared with this email"
	case errors.Is(err, store.ErrPolicyNotFound):
		return "Policy not found or no longer shared with you"
	case errors.Is(err, service.ErrAdminRequired):
		return "Admin role required"
	case errors.Is(err, adapter.ErrUnavailable):
		return "Server is busy or restarting, try again shortly"
	}
	return humanizeServerUnavailableError(err)
}
