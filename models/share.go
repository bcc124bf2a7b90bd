package models

import (
	"strings"
	"time"
)

// ShareGrant gives RecipientEmail read-only visibility of one policy.
// (PolicyID, RecipientEmail) is unique.
type ShareGrant struct {
	PolicyID       string    `json:"policy_id" db:"policy_id"`
	RecipientEmail string    `json:"recipient_email" db:"recipient_email"`
	GrantedBy      string    `json:"granted_by" db:"granted_by"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// ShareLedger is the authoritative list of grants for one policy, returned
// by every ledger command.
type ShareLedger struct {
	PolicyID string       `json:"policy_id"`
	Grants   []ShareGrant `json:"grants"`
}

// Recipients returns the granted emails in ledger order.
func (l ShareLedger) Recipients() []string {
	emails := make([]string, 0, len(l.Grants))
	for _, g := range l.Grants {
		emails = append(emails, g.RecipientEmail)
	}
	return emails
}

// ShareRequest is the body of a grant call.
type ShareRequest struct {
	Email string `json:"email"`
}

// NormalizeEmail trims and lower-cases an address so that lookups and the
// unique key agree.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
