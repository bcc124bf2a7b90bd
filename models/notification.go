package models

import "time"

// Notification tells a recipient that a policy was shared with them.
// Only IsRead ever changes after creation.
type Notification struct {
	ID             string    `json:"id" db:"id"`
	RecipientEmail string    `json:"recipient_email" db:"recipient_email"`
	Message        string    `json:"message" db:"message"`
	PolicyID       string    `json:"policy_id" db:"policy_id"`
	IsRead         bool      `json:"is_read" db:"is_read"`
	CreatedAt      time.Time `json:"created_at" db:"created_at"`
}

// UnreadCount is the notification badge value.
type UnreadCount struct {
	Unread int `json:"unread"`
}
