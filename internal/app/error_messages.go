// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// policy-desk server handlers and the terminal client.
//
// All Msg* constants are human-readable message strings that are written into
// HTTP response bodies or shown by the dashboard to describe the outcome of an
// operation. The client maps them back to sentinel errors, so the wording is
// part of the API.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgValidationFailed prefixes the list of missing fields of a rejected
	// form.
	MsgValidationFailed = "validation failed"

	// MsgInvalidEmail is returned when a share recipient is not a valid
	// address.
	MsgInvalidEmail = "invalid email address"

	// MsgSelfShare is returned when an owner tries to share a policy with
	// themselves.
	MsgSelfShare = "a policy can't be shared with its owner"

	// MsgInvalidTable is returned when the change stream is asked for an
	// unknown table.
	MsgInvalidTable = "unknown change feed table"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is either
	// expired or cannot be verified (e.g. wrong signature).
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoIdentity is returned when a handler needs the caller identity but
	// none is present in the request context.
	MsgNoIdentity = "no identity provided"

	// MsgAdminRequired is returned when a non-admin calls an admin route.
	MsgAdminRequired = "admin role required"

	// MsgPolicyNotFound is returned for a policy that does not exist or that
	// the caller may not see. Sharing changes by a non-owner get the same
	// answer.
	MsgPolicyNotFound = "policy not found"

	// MsgNotificationNotFound is returned for a notification that does not
	// exist or is addressed to someone else.
	MsgNotificationNotFound = "notification not found"

	// MsgProfileNotFound is returned when a role change targets an unknown
	// user.
	MsgProfileNotFound = "profile not found"

	// MsgDuplicateGrant is returned when the recipient already holds a grant.
	MsgDuplicateGrant = "policy is already shared with this email"

	// MsgInvalidBlobPath is returned for an empty or escaping upload path.
	MsgInvalidBlobPath = "invalid blob path"

	// MsgPayloadTooLarge is returned when an upload exceeds the size limit.
	MsgPayloadTooLarge = "payload too large"

	// MsgVersionIsNotSpecified is returned by GET /api/version when the
	// server was started without a version.
	MsgVersionIsNotSpecified = "version is not specified"

	// MsgStreamingUnsupported is returned when the response writer can't
	// flush server-sent events.
	MsgStreamingUnsupported = "streaming unsupported"
)
