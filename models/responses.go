package models

// PolicyListResponse is the body of a dashboard listing. Length is provided
// so the client can validate the response without iterating the slice.
type PolicyListResponse struct {
	Policies []PolicyRecord `json:"policies"`
	Length   int            `json:"length"`
}

// NotificationListResponse is the body of the notification dropdown.
type NotificationListResponse struct {
	Notifications []Notification `json:"notifications"`
	Unread        int            `json:"unread"`
}

// BlobUploadResponse carries the durable reference of an uploaded blob.
type BlobUploadResponse struct {
	URL string `json:"url"`
}

// VersionResponse is the body of GET /api/version.
type VersionResponse struct {
	Version string `json:"version"`
}

// Dashboard is everything the client shows on its main screen.
type Dashboard struct {
	View          PolicyFilter
	Policies      []PolicyRecord
	Counts        PolicyCounts
	Notifications []Notification
	Unread        int
}
