package store

import "errors"

// Domain errors returned by repositories and storages. Callers match them
// with [errors.Is].
var (
	// ErrPolicyNotFound is returned when a policy does not exist or is not
	// visible to the caller. Both cases are reported the same way.
	ErrPolicyNotFound = errors.New("policy was not found")

	// ErrDuplicateGrant is returned when the recipient already holds a grant
	// for the policy.
	ErrDuplicateGrant = errors.New("policy is already shared with this email")

	// ErrNotificationNotFound is returned when a notification does not exist
	// or belongs to another recipient.
	ErrNotificationNotFound = errors.New("notification was not found")

	// ErrProfileNotFound is returned when no profile row exists for a user.
	ErrProfileNotFound = errors.New("profile was not found")

	// ErrInvalidBlobPath is returned for an empty or escaping object key.
	ErrInvalidBlobPath = errors.New("invalid blob path")

	// ErrUploadingBlob is returned when the object store rejects a write.
	ErrUploadingBlob = errors.New("failed to upload blob")

	// ErrBlobNotFound is returned when a requested object does not exist.
	ErrBlobNotFound = errors.New("blob was not found")

	// ErrLocalSessionNotFound is returned when the client has no saved session.
	ErrLocalSessionNotFound = errors.New("local session not found")

	// ErrSnapshotNotFound is returned when no wizard snapshot is stored under
	// the requested key.
	ErrSnapshotNotFound = errors.New("wizard snapshot not found")
)

// Low-level database errors. Repositories wrap the driver error with one of
// these before returning it.
var (
	// ErrBuildingSQLQuery is returned when a squirrel builder fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrBeginningTransaction is returned when a transaction can't start.
	ErrBeginningTransaction = errors.New("failed to begin transaction")

	// ErrCommitingTransaction is returned when commit fails. The transaction
	// is considered rolled back.
	ErrCommitingTransaction = errors.New("failed to commit transaction")

	// ErrExecutingStatement is returned when an INSERT, UPDATE or DELETE fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning a single row fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when iterating a result set fails.
	ErrScanningRows = errors.New("failed to scan rows")

	// ErrEncodingFormData is returned when form data can't be encoded to or
	// decoded from the JSON column.
	ErrEncodingFormData = errors.New("failed to encode form data")
)

// Change feed errors.
var (
	// ErrPublishingChange is returned when an event can't be published.
	ErrPublishingChange = errors.New("failed to publish change event")

	// ErrSubscribing is returned when a feed subscription can't be opened.
	ErrSubscribing = errors.New("failed to subscribe to change feed")

	// ErrFeedClosed is returned by a feed after Close.
	ErrFeedClosed = errors.New("change feed is closed")
)
