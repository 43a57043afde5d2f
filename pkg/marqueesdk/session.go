package marqueesdk

import "sync"

// Session is an authenticated handle on the catalog.
type Session struct {
	client     *SDKClient
	clientName string

	mu    sync.RWMutex
	token string
}

func newSession(client *SDKClient, clientName, token string) *Session {
	return &Session{
		client:     client,
		clientName: clientName,
		token:      token,
	}
}

// ClientName is the name the session was created for.
func (s *Session) ClientName() string { return s.clientName }

// Token returns the current bearer token.
func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// SetToken replaces the bearer token, e.g. after logging in again.
func (s *Session) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}
