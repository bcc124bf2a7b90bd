package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation   = errors.New("validation failed")
	ErrNoIdentity   = errors.New("no identity in context")
	ErrNotSignedIn  = errors.New("not signed in")
	ErrUnknownTable = errors.New("unknown change feed table")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("version is not specified")

	ErrNotPolicyOwner = errors.New("only the owner can change sharing of a policy")
	ErrSelfShare      = errors.New("a policy can't be shared with its owner")
	ErrAdminRequired  = errors.New("admin role required")
)

// Wizard errors. They are returned without touching the controller state.
var (
	ErrWizardReadOnly  = errors.New("application is open read-only")
	ErrWizardBusy      = errors.New("application is being saved")
	ErrWizardSubmitted = errors.New("application is submitted, reopen it to edit")
	ErrWizardNotSaved  = errors.New("application was never saved")
	ErrInvalidStep     = errors.New("invalid wizard step")
)

// ErrReconciliation is matched by every [ReconciliationError].
var ErrReconciliation = errors.New("attachment upload failed")

// ReconciliationError names the attachment whose upload failed a run.
type ReconciliationError struct {
	Document string
	Err      error
}

func (e *ReconciliationError) Error() string {
	return fmt.Sprintf("%s: %q: %v", ErrReconciliation, e.Document, e.Err)
}

func (e *ReconciliationError) Unwrap() []error {
	return []error{ErrReconciliation, e.Err}
}
