package models

// Identity is the signed-in agent as verified from the bearer token.
// It is used for ownership checks and for authoring notifications.
type Identity struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
}

// IsZero reports whether no identity is present.
func (i Identity) IsZero() bool {
	return i.UserID == ""
}
