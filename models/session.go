package models

import "time"

// NewApplicationKey is the snapshot key of an application that was never
// persisted.
const NewApplicationKey = "new"

// LocalSession is the client's remembered sign-in.
type LocalSession struct {
	Token   string    `db:"token"`
	UserID  string    `db:"user_id"`
	Email   string    `db:"email"`
	SavedAt time.Time `db:"saved_at"`
}

// Identity returns the identity the session was saved for.
func (s LocalSession) Identity() Identity {
	return Identity{UserID: s.UserID, Email: s.Email}
}

// WizardSnapshot is an autosaved wizard session kept on the agent's machine
// so an interrupted application can be resumed.
type WizardSnapshot struct {
	Ref       PolicyRef
	Status    PolicyStatus
	Step      Step
	ReadOnly  bool
	FormData  FormData
	UpdatedAt time.Time
}

// SnapshotKey is the policy id, or [NewApplicationKey] before the first save.
func SnapshotKey(ref PolicyRef) string {
	if id, ok := ref.ID(); ok {
		return id
	}
	return NewApplicationKey
}
