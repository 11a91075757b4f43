package hoasdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the HOA board API. It covers the public
// endpoints and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a client with a ten second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSession wraps an access token obtained elsewhere, for example one kept
// in a browser cookie.
func (c *SDKClient) NewSession(accessToken string, expiresAt time.Time) *Session {
	return &Session{client: c, accessToken: accessToken, expiresAt: expiresAt}
}
