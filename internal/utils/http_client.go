package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// UserAgent identifies the terminal client to the policy desk server.
const UserAgent = "policy-desk-client"

// HTTPClient is the resty client the adapter talks to the server with.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a client rooted at baseURL. A zero timeout leaves
// requests unbounded, which the change stream relies on.
func NewHTTPClient(baseURL string, timeout time.Duration) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetHeader("User-Agent", UserAgent).
		SetHeader("Accept", "application/json")
	if timeout > 0 {
		client.SetTimeout(timeout)
	}
	return &HTTPClient{Client: client}
}
