package models

// OpenPolicyRequest asks the dashboard to open a policy in the wizard.
// Published through the client coordinator.
type OpenPolicyRequest struct {
	PolicyID       string `json:"policy_id"`
	NotificationID string `json:"notification_id,omitempty"`
}
