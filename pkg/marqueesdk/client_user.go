package marqueesdk

import (
	"context"
	"net/http"
)

// Register creates a client and returns a session for it.
func (c *SDKClient) Register(ctx context.Context, clientName, password string) (*Session, error) {
	return c.credentials(ctx, "/v1/user/register", http.StatusCreated, clientName, password)
}

// Login exchanges credentials for a session.
func (c *SDKClient) Login(ctx context.Context, clientName, password string) (*Session, error) {
	return c.credentials(ctx, "/v1/user/login", http.StatusOK, clientName, password)
}

func (c *SDKClient) credentials(ctx context.Context, path string, want int, clientName, password string) (*Session, error) {
	body, headers, err := jsonBody(CredentialsRequest{ClientName: clientName, Password: password})
	if err != nil {
		return nil, err
	}

	resp, err := c.doRequest(ctx, http.MethodPost, path, body, headers)
	if err != nil {
		return nil, err
	}

	var tokenResp TokenResponse
	if err := decodeJSON(resp, &tokenResp, want); err != nil {
		return nil, err
	}

	return newSession(c, clientName, tokenResp.Token), nil
}
