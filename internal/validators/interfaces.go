// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators holds the rules a policy application, a list filter, a
// share request or a role change must satisfy before it reaches storage.
//
// Form checks are grouped by field name (see [FieldPersonal] and friends) so
// callers can validate one wizard section at a time. Missing form fields are
// reported together in a [ValidationError] instead of one per call.
package validators

import "context"

// Validator checks a value. fields narrows the check to the named groups;
// none means every rule that applies to the value's type.
type Validator interface {
	Validate(ctx context.Context, obj any, fields ...string) error
}
