package models

import "strings"

// Role is an agent's permission level.
type Role string

const (
	RoleAgent Role = "agent"
	RoleAdmin Role = "admin"
)

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	return r == RoleAgent || r == RoleAdmin
}

// Profile is the agent record shown in the header and the admin panel.
type Profile struct {
	ID        string `json:"id" db:"id"`
	Email     string `json:"email" db:"email"`
	FirstName string `json:"first_name" db:"first_name"`
	LastName  string `json:"last_name" db:"last_name"`
	AgentCode string `json:"agent_code" db:"agent_code"`
	DOName    string `json:"do_name" db:"do_name"`
	DOCode    string `json:"do_code" db:"do_code"`
	Role      Role   `json:"role" db:"role"`
}

// DefaultProfile is what an identity without a stored profile sees.
func DefaultProfile(identity Identity) Profile {
	return Profile{ID: identity.UserID, Email: identity.Email, Role: RoleAgent}
}

// DisplayName is "first last", or the local part of the email when no name
// is set.
func (p Profile) DisplayName() string {
	if p.FirstName != "" {
		return strings.TrimSpace(p.FirstName + " " + p.LastName)
	}
	local, _, _ := strings.Cut(p.Email, "@")
	return local
}

// IsAdmin reports whether the profile has the admin role.
func (p Profile) IsAdmin() bool {
	return p.Role == RoleAdmin
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	AgentCode string `json:"agent_code"`
	DOName    string `json:"do_name"`
	DOCode    string `json:"do_code"`
}

// RoleUpdate is the body of an admin role change.
type RoleUpdate struct {
	Role Role `json:"role"`
}
