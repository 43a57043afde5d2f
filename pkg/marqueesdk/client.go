package marqueesdk

import (
	"net/http"
	"strings"
	"time"
)

// SDKClient is a client for the Marquee service. It provides the public
// operations and creates authenticated Sessions.
type SDKClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewSDKClient creates a new client with a 10 second request timeout.
func NewSDKClient(baseURL string) *SDKClient {
	return &SDKClient{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// NewSessionFromToken wraps a token obtained elsewhere. The token is not
// checked until it is used.
func (c *SDKClient) NewSessionFromToken(clientName, token string) *Session {
	return newSession(c, clientName, token)
}
