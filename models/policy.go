package models

import (
	"encoding/json"
	"time"
)

// PolicyStatus is the lifecycle state of a policy application.
type PolicyStatus string

const (
	// StatusDraft marks an application saved without passing validation.
	StatusDraft PolicyStatus = "DRAFT"
	// StatusSubmitted marks an application that passed validation and had
	// every attachment reconciled.
	StatusSubmitted PolicyStatus = "SUBMITTED"
)

// Valid reports whether s is one of the known statuses.
func (s PolicyStatus) Valid() bool {
	return s == StatusDraft || s == StatusSubmitted
}

// PolicyRecord is one stored policy application.
//
// ID, OwnerID, Status, LastModified, CreatedAt and SharedCount are row-level
// metadata. They are merged next to FormData on read and are never part of
// the persisted form JSON.
type PolicyRecord struct {
	ID           string       `json:"id"`
	OwnerID      string       `json:"owner_id"`
	Status       PolicyStatus `json:"status"`
	FormData     FormData     `json:"form_data"`
	LastModified time.Time    `json:"last_modified"`
	CreatedAt    time.Time    `json:"created_at"`
	SharedCount  int          `json:"shared_count"`
}

// Ref returns the persistence reference of a stored record.
func (r PolicyRecord) Ref() PolicyRef {
	if r.ID == "" {
		return NotPersisted()
	}
	return Persisted(r.ID)
}

// PolicyRef tells whether a policy already exists in the store.
// The zero value is NotPersisted.
type PolicyRef struct {
	id        string
	persisted bool
}

// NotPersisted is the reference of an application the store has never seen.
func NotPersisted() PolicyRef {
	return PolicyRef{}
}

// Persisted is the reference of an application stored under id.
func Persisted(id string) PolicyRef {
	return PolicyRef{id: id, persisted: true}
}

// ID returns the stored identifier and true, or "" and false when the
// application is not persisted yet.
func (r PolicyRef) ID() (string, bool) {
	return r.id, r.persisted
}

// IsPersisted reports whether the reference points at a stored record.
func (r PolicyRef) IsPersisted() bool {
	return r.persisted
}

func (r PolicyRef) String() string {
	if !r.persisted {
		return "not-persisted"
	}
	return "persisted(" + r.id + ")"
}

// MarshalJSON encodes NotPersisted as null and Persisted(id) as the id.
func (r PolicyRef) MarshalJSON() ([]byte, error) {
	if !r.persisted {
		return []byte("null"), nil
	}
	return json.Marshal(r.id)
}

// UnmarshalJSON is the inverse of MarshalJSON.
func (r *PolicyRef) UnmarshalJSON(b []byte) error {
	var id *string
	if err := json.Unmarshal(b, &id); err != nil {
		return err
	}
	if id == nil || *id == "" {
		*r = NotPersisted()
		return nil
	}
	*r = Persisted(*id)
	return nil
}

// PolicyWrite is a single upsert command for the store.
type PolicyWrite struct {
	Ref      PolicyRef    `json:"ref"`
	Status   PolicyStatus `json:"status"`
	FormData FormData     `json:"form_data"`
}

// ListScope narrows a policy listing by the viewer's relation to a record.
type ListScope string

const (
	// ScopeOwned lists records owned by the viewer.
	ScopeOwned ListScope = "owned"
	// ScopeShared lists records shared with the viewer's email.
	ScopeShared ListScope = "shared"
	// ScopeAll lists every record the viewer may see.
	ScopeAll ListScope = "all"
)

// Valid reports whether s is a known scope.
func (s ListScope) Valid() bool {
	switch s {
	case ScopeOwned, ScopeShared, ScopeAll:
		return true
	}
	return false
}

// PolicyFilter selects records for a dashboard listing.
// An empty Status matches every status; an empty Scope means ScopeOwned.
type PolicyFilter struct {
	Status PolicyStatus `json:"status,omitempty"`
	Scope  ListScope    `json:"scope,omitempty"`
}

// PolicyCounts is the dashboard counter strip.
type PolicyCounts struct {
	Submitted int `json:"submitted"`
	Drafts    int `json:"drafts"`
	Shared    int `json:"shared"`
}
