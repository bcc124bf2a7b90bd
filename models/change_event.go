package models

import "time"

// Table names published on the change feed.
type Table string

const (
	TablePolicies      Table = "policies"
	TablePolicyShares  Table = "policy_shares"
	TableNotifications Table = "notifications"
)

// Valid reports whether t is a table the feed publishes.
func (t Table) Valid() bool {
	switch t {
	case TablePolicies, TablePolicyShares, TableNotifications:
		return true
	}
	return false
}

// ChangeOp is the kind of row change.
type ChangeOp string

const (
	OpInsert ChangeOp = "INSERT"
	OpUpdate ChangeOp = "UPDATE"
	OpDelete ChangeOp = "DELETE"
)

// ChangeEvent says "something changed" in a table. It carries no row diff.
type ChangeEvent struct {
	Table    Table     `json:"table"`
	Op       ChangeOp  `json:"op"`
	RecordID string    `json:"record_id,omitempty"`
	At       time.Time `json:"at"`
}
