// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-policy-desk/internal/adapter"
	"github.com/MKhiriev/go-policy-desk/internal/app"
	"github.com/MKhiriev/go-policy-desk/internal/store"
)

// mapAdapterError turns a server answer back into the service or store error
// the server mapped to it, matching on the status and the message text.
// Errors without a known mapping are returned unchanged.
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	var resp *adapter.ResponseError
	if !errors.As(err, &resp) {
		return err
	}
	msg := resp.Message

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		switch {
		case msg == app.MsgSelfShare:
			return ErrSelfShare
		case msg == app.MsgInvalidTable:
			return ErrUnknownTable
		case strings.HasPrefix(msg, app.MsgValidationFailed), msg == app.MsgInvalidEmail:
			return fmt.Errorf("%w: %s", ErrValidation, msg)
		}

	case errors.Is(err, adapter.ErrUnauthorized):
		return ErrTokenIsExpiredOrInvalid

	case errors.Is(err, adapter.ErrForbidden):
		return ErrAdminRequired

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgNotificationNotFound:
			return store.ErrNotificationNotFound
		case app.MsgProfileNotFound:
			return store.ErrProfileNotFound
		}
		return store.ErrPolicyNotFound

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgDuplicateGrant {
			return store.ErrDuplicateGrant
		}
	}

	return err
}
