package models

// AccessLevel is a viewer's relation to one policy.
type AccessLevel int

const (
	// AccessNone: the viewer may not see the policy.
	AccessNone AccessLevel = iota
	// AccessShared: a grant exists for the viewer's email.
	AccessShared
	// AccessOwner: the viewer created the policy.
	AccessOwner
)

func (a AccessLevel) String() string {
	switch a {
	case AccessOwner:
		return "owner"
	case AccessShared:
		return "shared"
	}
	return "none"
}

// DecideAccess applies the visibility rule: owners see their records, and
// anyone holding a grant for the record sees it too.
func DecideAccess(record PolicyRecord, viewer Identity, hasGrant bool) AccessLevel {
	switch {
	case viewer.IsZero():
		return AccessNone
	case record.OwnerID == viewer.UserID:
		return AccessOwner
	case hasGrant:
		return AccessShared
	}
	return AccessNone
}

// ReadOnly resolves the effective read-only flag for a requested one.
// Only the owner may leave read-only mode.
func (a AccessLevel) ReadOnly(requested bool) bool {
	if a == AccessOwner {
		return requested
	}
	return true
}
