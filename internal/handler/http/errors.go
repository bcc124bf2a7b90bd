// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Authorization failures. Every /api route except /api/version answers them
// with 401; the body is the error text.
var (
	// ErrEmptyAuthorizationHeader means the request carries no
	// "Authorization" header.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrInvalidAuthorizationHeader means the header is not of the form
	// "Bearer <token>". Identity tokens are only accepted as bearer tokens.
	ErrInvalidAuthorizationHeader = errors.New("`Authorization` header must be `Bearer <token>`")
)
